package ronet

import (
	"sync"

	"github.com/seaglass-games/ronet/packet"
	"github.com/seaglass-games/ronet/protocol"
	"github.com/seaglass-games/ronet/wire"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *packet.Registry
)

// Default returns the shared registry covering every packet the
// protocol package defines. Built on first use.
func Default() *packet.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = protocol.NewRegistry()
	})
	return defaultRegistry
}

// DecodeNext reads the next packet from cur using the default
// registry.
func DecodeNext(cur *wire.Cursor) (any, error) {
	return Default().DecodeNext(cur)
}

// Decode reads the single packet held in data.
func Decode(data []byte) (any, error) {
	return Default().DecodeNext(wire.NewCursor(data))
}

// Encode returns the full wire bytes of pkt using the default
// registry.
func Encode(pkt any) ([]byte, error) {
	return Default().Encode(pkt)
}
