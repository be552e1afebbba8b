package protocol

// NpcDialogPacket appends text to the current NPC dialog window.
type NpcDialogPacket struct {
	PacketLength uint16   `ro:"packet_length"`
	NpcId        EntityId
	Text         string   `ro:"length_from:packet_length-8"`
}

// NextButtonPacket shows the "next" button in the dialog window.
type NextButtonPacket struct {
	EntityId EntityId
}

// CloseButtonPacket shows the "close" button in the dialog window.
type CloseButtonPacket struct {
	EntityId EntityId
}

// DialogMenuPacket shows a dialog choice menu. The choices are
// separated by ':' characters.
type DialogMenuPacket struct {
	PacketLength uint16   `ro:"packet_length"`
	NpcId        EntityId
	Message      string   `ro:"length_from:packet_length-8"`
}

// StartDialogPacket opens a dialog with an NPC.
type StartDialogPacket struct {
	NpcId      EntityId
	DialogType uint8
}

// NextDialogPacket advances the current NPC dialog.
type NextDialogPacket struct {
	NpcId EntityId
}

// CloseDialogPacket closes the current NPC dialog.
type CloseDialogPacket struct {
	NpcId EntityId
}

// ChooseDialogOptionPacket picks an entry from a dialog menu. Option
// values start at one; 255 cancels the menu.
type ChooseDialogOptionPacket struct {
	NpcId  EntityId
	Option int8
}
