package protocol

// ObjectiveDetails1 describes one hunt objective of a freshly accepted
// quest.
type ObjectiveDetails1 struct {
	HuntIdentification uint32
	ObjectiveType      uint32
	MobId              uint32
	MinimumLevel       uint16
	MaximumLevel       uint16
	MobCount           uint16
	MobName            string `ro:"length:24"`
}

// QuestNotification1Packet announces a newly accepted quest.
type QuestNotification1Packet struct {
	QuestId          uint32
	Active           uint8
	StartTime        uint32
	ExpireTime       uint32
	ObjectiveCount   uint16
	ObjectiveDetails [3]ObjectiveDetails1
}

// HuntingObjective is the kill progress of one hunt objective.
type HuntingObjective struct {
	QuestId      uint32
	MobId        uint32
	TotalCount   uint16
	CurrentCount uint16
}

// HuntingQuestNotificationPacket announces the hunt objectives of a
// quest.
type HuntingQuestNotificationPacket struct {
	PacketLength uint16             `ro:"packet_length"`
	Objectives   []HuntingObjective `ro:"repeat_rest"`
}

// HuntingQuestUpdateObjectivePacket updates hunt kill counts.
type HuntingQuestUpdateObjectivePacket struct {
	PacketLength   uint16             `ro:"packet_length"`
	ObjectiveCount uint16
	Objectives     []HuntingObjective `ro:"repeat_rest"`
}

// QuestRemovedPacket removes a quest from the quest log.
type QuestRemovedPacket struct {
	QuestId uint32
}

// QuestDetails describes one objective inside the quest list.
type QuestDetails struct {
	HuntIdentification uint32
	ObjectiveType      uint32
	MobId              uint32
	MinimumLevel       uint16
	MaximumLevel       uint16
	KillCount          uint16
	TotalCount         uint16
	MobName            string `ro:"length:24"`
}

// Quest is one entry of the quest list with its objectives.
type Quest struct {
	QuestId          uint32
	Active           uint8
	RemainingTime    uint32
	ExpireTime       uint32
	ObjectiveCount   uint16
	ObjectiveDetails []QuestDetails `ro:"repeat_from:objective_count"`
}

// QuestListPacket carries the full quest log.
type QuestListPacket struct {
	PacketLength uint16  `ro:"packet_length"`
	QuestCount   uint32
	Quests       []Quest `ro:"repeat_from:quest_count"`
}

// QuestEffectPacket shows a quest marker above an NPC.
type QuestEffectPacket struct {
	EntityId EntityId
	Position TilePosition
	Effect   QuestEffect
	Color    QuestColor
}
