package protocol

// MapServerLoginPacket logs into a map server after character
// selection.
type MapServerLoginPacket struct {
	AccountId   AccountId
	CharacterId CharacterId
	LoginId1    uint32
	ClientTick  ClientTick
	Sex         Sex
	Unknown     [4]uint8
}

// MapServerLoginSuccessPacket confirms the map server login and places
// the player on the map.
type MapServerLoginSuccessPacket struct {
	ClientTick ClientTick
	Position   WorldPosition
	Ignored    [2]uint8
	Font       uint16
}

// MapServerPlayerIdPacket announces the entity id assigned to the
// player on this map server.
type MapServerPlayerIdPacket struct {
	EntityId EntityId
}

// MapLoadedPacket tells the map server the client finished loading the
// map and is ready to receive entity updates.
type MapLoadedPacket struct{}

// ServerTickPacket is the server half of the keepalive exchange.
type ServerTickPacket struct {
	ClientTick ClientTick
}

// RequestServerTickPacket is the client half of the keepalive
// exchange.
type RequestServerTickPacket struct {
	ClientTick ClientTick
}

// ChangeMapPacket moves the player to a different map on the same map
// server.
type ChangeMapPacket struct {
	MapName  string       `ro:"length:16"`
	Position TilePosition
}

// ChangeMapCellPacket changes the type of a single map cell.
type ChangeMapCellPacket struct {
	Position TilePosition
	CellType uint16
	MapName  string       `ro:"length:16"`
}

// MapTypePacket declares the PvP and property flags of the current
// map.
type MapTypePacket struct {
	MapType uint16
	Flags   uint32
}

// RequestWarpToMapPacket asks the server to warp the player. Only
// usable with sufficient permissions.
type RequestWarpToMapPacket struct {
	MapName  string       `ro:"length:16"`
	Position TilePosition
}

// RequestPlayerMovePacket asks the server to walk the player to the
// given position.
type RequestPlayerMovePacket struct {
	Position WorldPosition
}

// PlayerMovePacket confirms a player movement with its path endpoints.
type PlayerMovePacket struct {
	Timestamp ClientTick
	FromTo    WorldPosition2
}

// EntityMovePacket announces the movement of another entity.
type EntityMovePacket struct {
	EntityId  EntityId
	FromTo    WorldPosition2
	Timestamp ClientTick
}

// EntityStopMovePacket halts an entity at the given tile.
type EntityStopMovePacket struct {
	EntityId EntityId
	Position TilePosition
}

// RequestActionPacket performs an action on a target, such as
// attacking or sitting down.
type RequestActionPacket struct {
	TargetId EntityId
	Action   Action
}

// RequestPlayerAttackFailedPacket reports that the target moved out of
// attack range.
type RequestPlayerAttackFailedPacket struct {
	TargetEntityId EntityId
	TargetPosition TilePosition
	Position       TilePosition
	AttackRange    uint16
}

// RestartPacket asks to return to the character selection screen or to
// respawn at the save point.
type RestartPacket struct {
	RestartType RestartType
}

// RestartResponsePacket reports whether the restart request was
// accepted.
type RestartResponsePacket struct {
	Result RestartResponseStatus
}

// DisconnectResponsePacket reports whether the client may disconnect
// immediately or has to wait out the combat timer.
type DisconnectResponsePacket struct {
	Result DisconnectResponseStatus
}
