package protocol

import (
	"bytes"
	"testing"

	"github.com/seaglass-games/ronet/codec"
)

func TestWorldPosition_KnownBytes(t *testing.T) {
	// prontera fountain, roughly.
	got, err := codec.NewEncoder().Encode(WorldPosition{X: 156, Y: 191})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x27, 0x0B, 0xF0}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded bytes\n got %#v\nwant %#v", got, want)
	}

	var back WorldPosition
	if err := codec.NewDecoder().Decode(want, &back); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if back.X != 156 || back.Y != 191 {
		t.Errorf("round trip: got (%d, %d)", back.X, back.Y)
	}
}

func TestWorldPosition_RoundTrip(t *testing.T) {
	enc := codec.NewEncoder()
	dec := codec.NewDecoder()

	// Coordinates are ten bits wide on the wire.
	for _, p := range []WorldPosition{
		{X: 0, Y: 0},
		{X: 1023, Y: 1023},
		{X: 1, Y: 1022},
		{X: 512, Y: 256},
	} {
		data, err := enc.Encode(p)
		if err != nil {
			t.Fatalf("Encode(%v) failed: %v", p, err)
		}
		if len(data) != 3 {
			t.Fatalf("Encode(%v): %d bytes", p, len(data))
		}
		var back WorldPosition
		if err := dec.Decode(data, &back); err != nil {
			t.Fatalf("Decode(%v) failed: %v", p, err)
		}
		if back != p {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestWorldPosition2_RoundTrip(t *testing.T) {
	enc := codec.NewEncoder()
	dec := codec.NewDecoder()

	for _, p := range []WorldPosition2{
		{FromX: 0, FromY: 0, ToX: 0, ToY: 0},
		{FromX: 1023, FromY: 1023, ToX: 1023, ToY: 1023},
		{FromX: 150, FromY: 187, ToX: 153, ToY: 190},
		{FromX: 1, FromY: 2, ToX: 3, ToY: 4},
	} {
		data, err := enc.Encode(p)
		if err != nil {
			t.Fatalf("Encode(%v) failed: %v", p, err)
		}
		if len(data) != 6 {
			t.Fatalf("Encode(%v): %d bytes", p, len(data))
		}
		var back WorldPosition2
		if err := dec.Decode(data, &back); err != nil {
			t.Fatalf("Decode(%v) failed: %v", p, err)
		}
		if back != p {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestServerAddress_String(t *testing.T) {
	addr := ServerAddress{127, 0, 0, 1}
	if got := addr.String(); got != "127.0.0.1" {
		t.Errorf("String: got %q", got)
	}
}
