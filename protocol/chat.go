package protocol

// GlobalMessagePacket sends a public chat message. The message text is
// NUL terminated on the wire.
type GlobalMessagePacket struct {
	PacketLength uint16 `ro:"packet_length"`
	Message      string
}

// ServerMessagePacket shows a plain server message in the chat log.
type ServerMessagePacket struct {
	PacketLength uint16 `ro:"packet_length"`
	Message      string `ro:"length_from:packet_length-4"`
}

// BroadcastMessagePacket shows a yellow broadcast across the screen.
type BroadcastMessagePacket struct {
	PacketLength uint16 `ro:"packet_length"`
	Message      string `ro:"length_from:packet_length-4"`
}

// Broadcast2MessagePacket shows a formatted broadcast across the
// screen.
type Broadcast2MessagePacket struct {
	PacketLength  uint16    `ro:"packet_length"`
	FontColor     ColorRGBA
	FontType      uint16
	FontSize      uint16
	FontAlignment uint16
	FontY         uint16
	Message       string    `ro:"length_from:packet_length-16"`
}

// OverheadMessagePacket shows a message above an entity's head.
type OverheadMessagePacket struct {
	PacketLength uint16   `ro:"packet_length"`
	EntityId     EntityId
	Message      string   `ro:"length_from:packet_length-8"`
}

// EntityMessagePacket shows a colored message above an entity.
type EntityMessagePacket struct {
	PacketLength uint16    `ro:"packet_length"`
	EntityId     EntityId
	Color        ColorBGRA
	Message      string    `ro:"length_from:packet_length-12"`
}
