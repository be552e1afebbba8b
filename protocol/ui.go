package protocol

// UpdatePartyInvitationStatePacket toggles whether party invitations
// are accepted.
type UpdatePartyInvitationStatePacket struct {
	Allowed uint8
}

// UpdateShowEquipPacket toggles whether other players may inspect the
// player's equipment.
type UpdateShowEquipPacket struct {
	OpenEquipWindow uint8
}

// UpdateConfigurationPacket updates a client-side configuration value
// stored on the server.
type UpdateConfigurationPacket struct {
	ConfigType uint32
	Value      uint32
}

// NavigateToMonsterPacket starts in-client navigation towards a
// monster spawn.
type NavigateToMonsterPacket struct {
	TargetType      uint8
	Flags           uint8
	HideWindow      uint8
	MapName         string       `ro:"length:16"`
	TargetPosition  TilePosition
	TargetMonsterId uint16
}

// MarkMinimapPositionPacket places a marker on the minimap.
type MarkMinimapPositionPacket struct {
	NpcId    EntityId
	Type     MarkerType
	Position LargeTilePosition
	Id       uint8
	Color    ColorRGBA
}

// DisplayImagePacket shows an illustration image.
type DisplayImagePacket struct {
	ImageName string        `ro:"length:64"`
	Location  ImageLocation
}

// NewMailStatusPacket toggles the new mail indicator.
type NewMailStatusPacket struct {
	NewAvailable uint8
}

// AchievementData is the progress record of a single achievement.
type AchievementData struct {
	AchievementId       uint32
	IsCompleted         uint8
	Objectives          [10]uint32
	CompletionTimestamp uint32
	GotRewarded         uint8
}

// AchievementUpdatePacket updates the progress of one achievement.
type AchievementUpdatePacket struct {
	TotalScore                       uint32
	Level                            uint16
	AchievementExperience            uint32
	AchievementExperienceToNextLevel uint32
	Data                             AchievementData
}

// AchievementListPacket carries the full achievement list.
type AchievementListPacket struct {
	PacketLength                     uint16            `ro:"packet_length"`
	AchievementCount                 uint32
	TotalScore                       uint32
	Level                            uint16
	AchievementExperience            uint32
	AchievementExperienceToNextLevel uint32
	Data                             []AchievementData `ro:"repeat_from:achievement_count"`
}
