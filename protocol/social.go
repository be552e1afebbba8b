package protocol

// Friend identifies one entry of the friend list.
type Friend struct {
	AccountId   AccountId
	CharacterId CharacterId
	Name        string      `ro:"length:24"`
}

// AddFriendPacket asks another player to become a friend.
type AddFriendPacket struct {
	Name string `ro:"length:24"`
}

// RemoveFriendPacket removes a friend from the friend list.
type RemoveFriendPacket struct {
	AccountId   AccountId
	CharacterId CharacterId
}

// NotifyFriendRemovedPacket reports that a friend removed the player.
type NotifyFriendRemovedPacket struct {
	AccountId   AccountId
	CharacterId CharacterId
}

// FriendListPacket carries the full friend list.
type FriendListPacket struct {
	PacketLength uint16   `ro:"packet_length"`
	Friends      []Friend `ro:"repeat_rest"`
}

// FriendOnlineStatusPacket reports a friend coming online or going
// offline.
type FriendOnlineStatusPacket struct {
	AccountId   AccountId
	CharacterId CharacterId
	State       OnlineState
	Name        string      `ro:"length:24"`
}

// FriendRequestPacket delivers an incoming friend request.
type FriendRequestPacket struct {
	Requester Friend
}

// FriendRequestResponsePacket answers an incoming friend request.
type FriendRequestResponsePacket struct {
	AccountId   AccountId
	CharacterId CharacterId
	Response    FriendRequestResponse
}

// FriendRequestResultPacket reports the outcome of a friend request.
type FriendRequestResultPacket struct {
	Result FriendRequestResult
	Friend Friend
}

// PartyInvitePacket delivers an incoming party invitation.
type PartyInvitePacket struct {
	PartyId   PartyId
	PartyName string  `ro:"length:24"`
}

// ReputationEntry is the player's standing with one faction.
type ReputationEntry struct {
	ReputationType uint64
	Points         int64
}

// ReputationPacket carries the player's faction standings.
type ReputationPacket struct {
	PacketLength uint16            `ro:"packet_length"`
	Success      uint8
	Entries      []ReputationEntry `ro:"repeat_rest"`
}

// Alliance names a clan the player's clan is allied with.
type Alliance struct {
	Name string `ro:"length:24"`
}

// Antagonist names a clan the player's clan is hostile towards.
type Antagonist struct {
	Name string `ro:"length:24"`
}

// ClanInfoPacket describes the player's clan.
type ClanInfoPacket struct {
	PacketLength    uint16       `ro:"packet_length"`
	ClanId          uint32
	ClanName        string       `ro:"length:24"`
	ClanMaster      string       `ro:"length:24"`
	ClanMap         string       `ro:"length:16"`
	AllianceCount   uint8
	AntagonistCount uint8
	Alliances       []Alliance   `ro:"repeat_from:alliance_count"`
	Antagonists     []Antagonist `ro:"repeat_from:antagonist_count"`
}

// ClanOnlineCountPacket updates the clan member counter.
type ClanOnlineCountPacket struct {
	OnlineMembers  uint16
	MaximumMembers uint16
}
