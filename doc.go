// Package ronet implements the Ragnarok Online client/server wire
// protocol: a tag-prefixed, little-endian binary packet format spoken
// by the login, character and map servers.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	ronet/           Root package with a ready-made default registry
//	├── protocol/    Packet definitions and shared field types
//	├── packet/      Tag registry, framing and dispatch
//	├── codec/       Schema compiler, encoder and decoder
//	├── wire/        Byte-level cursor and writer primitives
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Decode a captured stream:
//
//	cur := wire.NewCursor(captured)
//	for cur.Remaining() > 0 {
//	    pkt, err := ronet.DecodeNext(cur)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    switch p := pkt.(type) {
//	    case *protocol.ServerMessagePacket:
//	        fmt.Println(p.Message)
//	    }
//	}
//
// Encode a packet, header tag and length field included:
//
//	data, err := ronet.Encode(&protocol.RequestPlayerMovePacket{
//	    Position: protocol.WorldPosition{X: 156, Y: 191},
//	})
//
// Applications speaking only a subset of the protocol, or a different
// client version, can build their own registry with packet.NewRegistry
// and register packet types against their own tags. The codec package
// works against plain tagged structs, so custom packets need no code
// beyond their definition.
package ronet
