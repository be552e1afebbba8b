package protocol

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/seaglass-games/ronet/codec"
	"github.com/seaglass-games/ronet/errors"
	"github.com/seaglass-games/ronet/wire"
)

func TestStatusUpdate_KnownBytes(t *testing.T) {
	got, err := codec.NewEncoder().Encode(StatusUpdate{
		Kind:   StatusZeny,
		Values: [3]uint64{1000},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x14, 0x00, 0xE8, 0x03, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded bytes\n got %#v\nwant %#v", got, want)
	}
}

func TestStatusUpdate_RoundTrip(t *testing.T) {
	enc := codec.NewEncoder()
	dec := codec.NewDecoder()

	for _, s := range []StatusUpdate{
		{Kind: StatusMovementSpeed, Values: [3]uint64{150}},
		{Kind: StatusBaseExperience, Values: [3]uint64{1 << 40}},
		{Kind: StatusStrength, Values: [3]uint64{99, 12}},
		{Kind: StatusLuckCost, Values: [3]uint64{11}},
		{Kind: StatusCartInfo, Values: [3]uint64{15, 4000, 8000}},
	} {
		data, err := enc.Encode(s)
		if err != nil {
			t.Fatalf("Encode(%v) failed: %v", s, err)
		}
		var back StatusUpdate
		if err := dec.Decode(data, &back); err != nil {
			t.Fatalf("Decode(%v) failed: %v", s, err)
		}
		if back != s {
			t.Errorf("round trip of %v gave %v", s, back)
		}
	}
}

func TestStatusUpdate_UnknownKind(t *testing.T) {
	_, err := codec.NewEncoder().Encode(StatusUpdate{Kind: 10})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindUnknownTag}) {
		t.Fatalf("expected unknown_tag, got: %v", err)
	}

	var back StatusUpdate
	err = codec.NewDecoder().Decode([]byte{0x0A, 0x00, 0x01, 0x02, 0x03, 0x04}, &back)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnknownTag}) {
		t.Fatalf("expected unknown_tag, got: %v", err)
	}
}

// The status packets pad their update to a fixed region, so a four
// byte payload still occupies the full body.
func TestUpdateStatusPacket_RegionPadding(t *testing.T) {
	enc := codec.NewEncoder()
	dec := codec.NewDecoder()

	pkt := UpdateStatus1Packet{Update: StatusUpdate{
		Kind:   StatusNextBaseExperience,
		Values: [3]uint64{400000},
	}}
	data, err := enc.Encode(&pkt)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(data) != 12 {
		t.Fatalf("body should fill the region, got %d bytes", len(data))
	}

	var back UpdateStatus1Packet
	if err := dec.Decode(data, &back); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if back.Update != pkt.Update {
		t.Errorf("round trip gave %v", back.Update)
	}

	short := UpdateStatus3Packet{Update: StatusUpdate{
		Kind:   StatusLuckCost,
		Values: [3]uint64{5},
	}}
	data, err = enc.Encode(&short)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("cost updates occupy three bytes, got %d", len(data))
	}

	cur := wire.NewCursor(data)
	var backShort UpdateStatus3Packet
	if err := dec.DecodeFrom(cur, &backShort); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if backShort.Update != short.Update {
		t.Errorf("round trip gave %v", backShort.Update)
	}
}
