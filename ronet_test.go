package ronet

import (
	"testing"

	"github.com/seaglass-games/ronet/protocol"
)

func TestDefaultRegistry_RoundTrip(t *testing.T) {
	data, err := Encode(&protocol.RequestPlayerMovePacket{
		Position: protocol.WorldPosition{X: 156, Y: 191},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	move, ok := decoded.(*protocol.RequestPlayerMovePacket)
	if !ok {
		t.Fatalf("Decode returned %T", decoded)
	}
	if move.Position.X != 156 || move.Position.Y != 191 {
		t.Errorf("position: got %+v", move.Position)
	}
}

func TestDefaultRegistry_Shared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same registry")
	}
}
