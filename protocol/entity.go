package protocol

// MovingEntityAppearedPacket announces an entity that entered view
// while walking.
type MovingEntityAppearedPacket struct {
	PacketLength        uint16         `ro:"packet_length"`
	ObjectType          uint8
	EntityId            EntityId
	GroupId             uint32
	MovementSpeed       uint16
	BodyState           uint16
	HealthState         uint16
	EffectState         uint32
	Job                 uint16
	Head                uint16
	Weapon              uint32
	Shield              uint32
	Accessory           uint16
	MoveStartTime       uint32
	Accessory2          uint16
	Accessory3          uint16
	HeadPalette         uint16
	BodyPalette         uint16
	HeadDirection       uint16
	Robe                uint16
	GuildId             uint32
	EmblemVersion       uint16
	Honor               uint16
	Virtue              uint32
	IsPkModeOn          uint8
	Sex                 Sex
	Position            WorldPosition2
	XSize               uint8
	YSize               uint8
	CLevel              uint16
	Font                uint16
	MaximumHealthPoints int32
	HealthPoints        int32
	IsBoss              uint8
	Body                uint16
	Name                string         `ro:"length:24"`
}

// EntityAppearedPacket announces a standing entity that entered view.
type EntityAppearedPacket struct {
	PacketLength        uint16        `ro:"packet_length"`
	ObjectType          uint8
	EntityId            EntityId
	GroupId             uint32
	MovementSpeed       uint16
	BodyState           uint16
	HealthState         uint16
	EffectState         uint32
	Job                 uint16
	Head                uint16
	Weapon              uint32
	Shield              uint32
	Accessory           uint16
	Accessory2          uint16
	Accessory3          uint16
	HeadPalette         uint16
	BodyPalette         uint16
	HeadDirection       uint16
	Robe                uint16
	GuildId             uint32
	EmblemVersion       uint16
	Honor               uint16
	Virtue              uint32
	IsPkModeOn          uint8
	Sex                 Sex
	Position            WorldPosition
	XSize               uint8
	YSize               uint8
	CLevel              uint16
	Font                uint16
	MaximumHealthPoints int32
	HealthPoints        int32
	IsBoss              uint8
	Body                uint16
	Name                string        `ro:"length:24"`
}

// EntityAppeared2Packet announces an entity that spawned into view,
// including its initial state such as sitting or dead.
type EntityAppeared2Packet struct {
	PacketLength        uint16        `ro:"packet_length"`
	ObjectType          uint8
	EntityId            EntityId
	GroupId             uint32
	MovementSpeed       uint16
	BodyState           uint16
	HealthState         uint16
	EffectState         uint32
	Job                 uint16
	Head                uint16
	Weapon              uint32
	Shield              uint32
	Accessory           uint16
	Accessory2          uint16
	Accessory3          uint16
	HeadPalette         uint16
	BodyPalette         uint16
	HeadDirection       uint16
	Robe                uint16
	GuildId             uint32
	EmblemVersion       uint16
	Honor               uint16
	Virtue              uint32
	IsPkModeOn          uint8
	Sex                 Sex
	Position            WorldPosition
	XSize               uint8
	YSize               uint8
	State               uint8
	CLevel              uint16
	Font                uint16
	MaximumHealthPoints int32
	HealthPoints        int32
	IsBoss              uint8
	Body                uint16
	Name                string        `ro:"length:24"`
}

// EntityDisappearedPacket removes an entity from view.
type EntityDisappearedPacket struct {
	EntityId EntityId
	Reason   DisappearanceReason
}

// RequestDetailsPacket asks for the name and affiliations of an
// entity.
type RequestDetailsPacket struct {
	EntityId EntityId
}

// RequestPlayerDetailsSuccessPacket carries the names attached to a
// player entity.
type RequestPlayerDetailsSuccessPacket struct {
	CharacterId  CharacterId
	Name         string      `ro:"length:24"`
	PartyName    string      `ro:"length:24"`
	GuildName    string      `ro:"length:24"`
	PositionName string      `ro:"length:24"`
	TitleId      uint32
}

// RequestEntityDetailsSuccessPacket carries the name of a non-player
// entity.
type RequestEntityDetailsSuccessPacket struct {
	EntityId EntityId
	GroupId  uint32
	Name     string   `ro:"length:24"`
	Title    string   `ro:"length:24"`
}

// SpriteChangePacket changes a single sprite layer of an entity.
type SpriteChangePacket struct {
	AccountId  AccountId
	SpriteType uint8
	Value      uint32
	Value2     uint32
}

// StateChangePacket updates the body, health and effect state of an
// entity.
type StateChangePacket struct {
	EntityId    EntityId
	BodyState   uint16
	HealthState uint16
	EffectState uint32
	IsPkModeOn  uint8
}

// UpdateEntityHealthPointsPacket updates the health bar of an entity.
type UpdateEntityHealthPointsPacket struct {
	EntityId            EntityId
	HealthPoints        uint32
	MaximumHealthPoints uint32
}

// DamagePacket reports an attack between two entities.
type DamagePacket struct {
	SourceEntityId           EntityId
	DestinationEntityId      EntityId
	ClientTick               ClientTick
	SourceMovementSpeed      uint32
	DestinationMovementSpeed uint32
	DamageAmount             uint32
	IsSpecialDamage          uint8
	AmountOfHits             uint16
	DamageType               uint8
	DamageAmount2            uint32
}

// DisplayEmotionPacket shows an emotion bubble above an entity.
type DisplayEmotionPacket struct {
	EntityId EntityId
	Emotion  uint8
}

// VisualEffectPacket plays a named map effect on an entity.
type VisualEffectPacket struct {
	EntityId EntityId
	Effect   VisualEffect
}

// DisplaySpecialEffectPacket plays an arbitrary effect on an entity.
type DisplaySpecialEffectPacket struct {
	EntityId EntityId
	EffectId uint32
}
