package protocol

// SkillInformation is one entry of the skill tree.
type SkillInformation struct {
	SkillId        SkillId
	SkillType      SkillType
	SkillLevel     SkillLevel
	SpellPointCost uint16
	AttackRange    uint16
	SkillName      string     `ro:"length:24"`
	Upgraded       uint8
}

// UpdateSkillTreePacket replaces the client's skill tree.
type UpdateSkillTreePacket struct {
	PacketLength uint16             `ro:"packet_length"`
	Skills       []SkillInformation `ro:"repeat_rest"`
}

// HotkeyData is one hotbar slot, holding either a skill or an item.
type HotkeyData struct {
	IsSkill              uint8
	SkillId              uint32
	QuantityOrSkillLevel SkillLevel
}

// UpdateHotkeysPacket replaces the hotbar layout.
type UpdateHotkeysPacket struct {
	Rotate  uint8
	Tab     uint16
	Hotkeys [38]HotkeyData
}

// UseSkillAtIdPacket casts a skill on a target entity.
type UseSkillAtIdPacket struct {
	SkillLevel SkillLevel
	SkillId    SkillId
	TargetId   EntityId
}

// UseSkillOnGroundPacket casts a skill on a map tile.
type UseSkillOnGroundPacket struct {
	SkillLevel     SkillLevel
	SkillId        SkillId
	TargetPosition TilePosition
	Unused         uint8
}

// StartUseSkillPacket begins channeling a held skill.
type StartUseSkillPacket struct {
	SkillId    SkillId
	SkillLevel SkillLevel
	TargetId   EntityId
}

// EndUseSkillPacket stops channeling a held skill.
type EndUseSkillPacket struct {
	SkillId SkillId
}

// UseSkillSuccessPacket confirms a ground skill cast.
type UseSkillSuccessPacket struct {
	SourceEntity      EntityId
	DestinationEntity EntityId
	Position          TilePosition
	SkillId           SkillId
	Element           uint32
	DelayTime         uint32
	Disposable        uint8
}

// ToUseSkillSuccessPacket confirms an item or self skill cast.
type ToUseSkillSuccessPacket struct {
	SkillId SkillId
	Btype   int32
	ItemId  ItemId
	Flag    uint8
	Cause   uint8
}

// NotifySkillUnitPacket places a skill unit such as a trap or a
// warp portal on the map.
type NotifySkillUnitPacket struct {
	PacketLength uint16       `ro:"packet_length"`
	EntityId     EntityId
	CreatorId    EntityId
	Position     TilePosition
	UnitId       SkillUnitId
	Range        uint8
	Visible      uint8
	SkillLevel   uint8
}

// NotifyGroundSkillPacket plays a ground skill animation.
type NotifyGroundSkillPacket struct {
	SkillId   SkillId
	EntityId  EntityId
	Level     SkillLevel
	Position  TilePosition
	StartTime ClientTick
}

// SkillUnitDisappearPacket removes a skill unit from the map.
type SkillUnitDisappearPacket struct {
	EntityId EntityId
}

// DisplaySkillCooldownPacket starts a cooldown timer on a skill.
type DisplaySkillCooldownPacket struct {
	SkillId SkillId
	Until   ClientTick
}

// DisplaySkillEffectAndDamagePacket plays a skill animation together
// with its damage numbers.
type DisplaySkillEffectAndDamagePacket struct {
	SkillId             SkillId
	SourceEntityId      EntityId
	DestinationEntityId EntityId
	StartTime           ClientTick
	SourceDelay         uint32
	DestinationDelay    uint32
	Damage              uint32
	Level               SkillLevel
	Div                 uint16
	SkillType           uint8
}

// DisplayPlayerHealEffectPacket shows a heal number on the player.
type DisplayPlayerHealEffectPacket struct {
	HealType   HealType
	HealAmount uint32
}

// DisplaySkillEffectNoDamagePacket plays a skill animation without
// damage, such as a heal or a buff.
type DisplaySkillEffectNoDamagePacket struct {
	SkillId             SkillId
	HealAmount          uint32
	DestinationEntityId EntityId
	SourceEntityId      EntityId
	Result              uint8
}

// StatusChangePacket starts or stops a status effect on an entity.
type StatusChangePacket struct {
	Index                   uint16
	EntityId                EntityId
	State                   uint8
	DurationInMilliseconds  uint32
	RemainingInMilliseconds uint32
	Value                   [3]uint32
}

// StatusChangeSequencePacket updates a status effect icon.
type StatusChangeSequencePacket struct {
	Index uint16
	Id    uint32
	State uint8
}
