package protocol

// CharacterServerLoginPacket logs into a character server using the
// tokens handed out by the login server.
type CharacterServerLoginPacket struct {
	AccountId AccountId
	LoginId1  uint32
	LoginId2  uint32
	Unknown   uint16
	Sex       Sex
}

// CharacterServerLoginSuccessPacket reports the slot layout of the
// account.
type CharacterServerLoginSuccessPacket struct {
	Unknown             uint16    // always 29 on modern servers
	NormalSlotCount     uint8
	VipSlotCount        uint8
	BillingSlotCount    uint8
	ProducibleSlotCount uint8
	ValidSlot           uint8
	Unused              [20]uint8
}

// CharacterSlotInfoPacket carries the legacy slot counts sent ahead of
// the character list.
type CharacterSlotInfoPacket struct {
	Unused             uint16
	MaximumSlotCount   uint8
	AvailableSlotCount uint8
	VipSlotCount       uint8
	Unknown            [20]uint8
}

// InventoryExpansionInfoPacket precedes the inventory listing.
type InventoryExpansionInfoPacket struct {
	Unknown uint16
}

// CharacterServerKeepalivePacket keeps the character server session
// alive. The account id is never read by the server.
type CharacterServerKeepalivePacket struct {
	AccountId AccountId
}

// CharacterInformation is the full character sheet used by the
// character list and creation responses.
type CharacterInformation struct {
	CharacterId              CharacterId
	Experience               int64
	Money                    int32
	JobExperience            int64
	JobLevel                 int32
	BodyState                int32
	HealthState              int32
	EffectState              int32
	Virtue                   int32
	Honor                    int32
	JobPoint                 int16
	HealthPoints             int64
	MaximumHealthPoints      int64
	SpellPoints              int64
	MaximumSpellPoints       int64
	MovementSpeed            int16
	Job                      int16
	Head                     int16
	Body                     int16
	Weapon                   int16
	Level                    int16
	SpPoint                  int16
	Accessory                int16
	Shield                   int16
	Accessory2               int16
	Accessory3               int16
	HeadPalette              int16
	BodyPalette              int16
	Name                     string      `ro:"length:24"`
	Strength                 uint8
	Agility                  uint8
	Vitality                 uint8
	Intelligence             uint8
	Dexterity                uint8
	Luck                     uint8
	CharacterNumber          uint8
	HairColor                uint8
	IsChangedChar            int16
	MapName                  string      `ro:"length:16"`
	DeletionReverseDate      int32
	RobePalette              int32
	CharacterSlotChangeCount int32
	CharacterNameChangeCount int32
	Sex                      Sex
}

// CreateCharacterPacket asks the character server to create a new
// character in an empty slot.
type CreateCharacterPacket struct {
	Name      string   `ro:"length:24"`
	Slot      uint8
	HairColor uint16
	HairStyle uint16
	StartJob  uint16
	Unknown   [2]uint8
	Sex       Sex
}

// CreateCharacterSuccessPacket returns the sheet of the newly created
// character.
type CreateCharacterSuccessPacket struct {
	CharacterInformation CharacterInformation
}

// CharacterCreationFailedPacket gives the reason character creation
// was refused.
type CharacterCreationFailedPacket struct {
	Reason CharacterCreationFailedReason
}

// RequestCharacterListPacket asks for every character on the account.
type RequestCharacterListPacket struct{}

// RequestCharacterListSuccessPacket lists the account's characters.
type RequestCharacterListSuccessPacket struct {
	PacketLength uint16                 `ro:"packet_length"`
	Characters   []CharacterInformation `ro:"repeat_rest"`
}

// SelectCharacterPacket picks the character in the given slot.
type SelectCharacterPacket struct {
	SelectedSlot uint8
}

// CharacterSelectionSuccessPacket hands the client over to a map
// server for the selected character.
type CharacterSelectionSuccessPacket struct {
	CharacterId   CharacterId
	MapName       string        `ro:"length:16"`
	MapServerIP   ServerAddress
	MapServerPort uint16
	Unknown       [128]uint8
}

// CharacterSelectionFailedPacket gives the reason character selection
// was refused.
type CharacterSelectionFailedPacket struct {
	Reason CharacterSelectionFailedReason
}

// DeleteCharacterPacket asks the character server to delete a
// character. The email field doubles as date of birth depending on
// server configuration.
type DeleteCharacterPacket struct {
	CharacterId CharacterId
	Email       string      `ro:"length:40"`
	Unknown     [10]uint8
}

// CharacterDeletionSuccessPacket confirms a character deletion.
type CharacterDeletionSuccessPacket struct{}

// CharacterDeletionFailedPacket gives the reason character deletion
// was refused.
type CharacterDeletionFailedPacket struct {
	Reason CharacterDeletionFailedReason
}

// SwitchCharacterSlotPacket moves a character between slots.
type SwitchCharacterSlotPacket struct {
	OriginSlot      uint16
	DestinationSlot uint16
	RemainingMoves  uint16
}

// SwitchCharacterSlotResponsePacket reports the result of a slot
// switch.
type SwitchCharacterSlotResponsePacket struct {
	Unknown        uint16
	Status         SwitchCharacterSlotResponseStatus
	RemainingMoves uint16
}
