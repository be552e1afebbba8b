package protocol

import (
	"fmt"

	"github.com/seaglass-games/ronet/codec"
)

// ClientTick is the millisecond timestamp exchanged for movement and
// keepalive synchronization.
type ClientTick uint32

type AccountId uint32

type CharacterId uint32

type PartyId uint32

type EntityId uint32

type SkillId uint16

type SkillLevel uint16

type ItemId uint32

// ItemIndex addresses a slot in the player inventory. The wire value
// is always the logical index plus two, so index 0 travels as 2.
type ItemIndex uint16

func init() {
	codec.RegisterWireOffset(ItemIndex(0), 2)
}

// ServerAddress is an IPv4 address in network byte order.
type ServerAddress [4]uint8

func (a ServerAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// TilePosition is a map coordinate in tiles.
type TilePosition struct {
	X uint16
	Y uint16
}

// LargeTilePosition is a map coordinate for packets that address the
// whole world map, such as minimap markers.
type LargeTilePosition struct {
	X uint32
	Y uint32
}

type ColorBGRA struct {
	Blue  uint8
	Green uint8
	Red   uint8
	Alpha uint8
}

type ColorRGBA struct {
	Red   uint8
	Green uint8
	Blue  uint8
	Alpha uint8
}
