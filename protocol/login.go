package protocol

// LoginServerLoginPacket is the very first packet of a session, sent
// after the user has entered their credentials.
type LoginServerLoginPacket struct {
	Version    [4]uint8 // unused by the server
	Name       string   `ro:"length:24"`
	Password   string   `ro:"length:24"`
	ClientType uint8    // unused by the server
}

// CharacterServerInformation describes one character server offered
// after a successful login.
type CharacterServerInformation struct {
	ServerIP   ServerAddress
	ServerPort uint16
	ServerName string        `ro:"length:20"`
	UserCount  uint16
	ServerType uint16
	DisplayNew uint16
	Unknown    [128]uint8
}

// LoginServerLoginSuccessPacket answers a successful login with the
// session tokens and the character servers to pick from.
type LoginServerLoginSuccessPacket struct {
	PacketLength uint16    `ro:"packet_length"`
	LoginId1     uint32
	AccountId    AccountId
	LoginId2     uint32
	// Deprecated, always 0 on modern servers.
	IpAddress uint32
	// Deprecated, always 0 on modern servers.
	Name             [24]uint8
	Unknown          uint16
	Sex              Sex
	AuthToken        [17]uint8
	CharacterServers []CharacterServerInformation `ro:"repeat_rest"`
}

// LoginFailedPacket is the short login rejection.
type LoginFailedPacket struct {
	Reason LoginFailedReason
}

// LoginFailedPacket2 is the extended login rejection.
type LoginFailedPacket2 struct {
	Reason LoginFailedReason2
}

// LoginServerKeepalivePacket is sent every 60 seconds to keep the
// login session alive.
type LoginServerKeepalivePacket struct {
	UserId [24]uint8
}

// MapServerUnavailablePacket reports that the selected map server
// cannot be joined.
type MapServerUnavailablePacket struct {
	PacketLength uint16 `ro:"packet_length"`
	Unknown      string `ro:"length_from:packet_length-4"`
}
