package protocol

// UpdateStatusPacket updates a single character statistic. The body is
// padded to a fixed region, so short updates round-trip unchanged.
type UpdateStatusPacket struct {
	Update StatusUpdate `ro:"length:6"`
}

// UpdateStatus1Packet updates a statistic whose value needs a wide
// region, such as experience.
type UpdateStatus1Packet struct {
	Update StatusUpdate `ro:"length:12"`
}

// UpdateStatus2Packet updates a base stat together with its bonus.
type UpdateStatus2Packet struct {
	Update StatusUpdate `ro:"length:10"`
}

// UpdateStatus3Packet updates a single byte statistic such as a stat
// point cost.
type UpdateStatus3Packet struct {
	Update StatusUpdate `ro:"length:3"`
}

// InitialStatusPacket carries the full stat sheet sent after entering
// a map.
type InitialStatusPacket struct {
	StatusPoints         uint16
	Strength             uint8
	RequiredStrength     uint8
	Agility              uint8
	RequiredAgility      uint8
	Vitality             uint8
	RequiredVitality     uint8
	Intelligence         uint8
	RequiredIntelligence uint8
	Dexterity            uint8
	RequiredDexterity    uint8
	Luck                 uint8
	RequiredLuck         uint8
	LeftAttack           uint16
	RightAttack          uint16
	RightMagicAttack     uint16
	LeftMagicAttack      uint16
	LeftDefense          uint16
	RightDefense         uint16
	RightMagicDefense    uint16
	LeftMagicDefense     uint16
	Hit                  uint16
	Flee                 uint16
	Flee2                uint16
	Crit                 uint16
	AttackSpeed          uint16
	BonusAttackSpeed     uint16
}

// UpdateAttackRangePacket updates the player's attack range.
type UpdateAttackRangePacket struct {
	AttackRange uint16
}

// DisplayGainedExperiencePacket shows an experience gain notification.
type DisplayGainedExperiencePacket struct {
	AccountId AccountId
	Amount    uint64
	Type      ExperienceType
	Source    ExperienceSource
}
