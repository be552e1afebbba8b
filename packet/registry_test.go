package packet

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/seaglass-games/ronet/errors"
	"github.com/seaglass-games/ronet/wire"
)

type tickPacket struct {
	Tick uint32
}

type chatPacket struct {
	PacketLength uint16 `ro:"packet_length"`
	Message      string `ro:"length_from:packet_length-4"`
}

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.Register(0x007F, tickPacket{}, Ping())
	r.Register(0x008E, chatPacket{})
	return r
}

func TestRegistry_EncodeFixed(t *testing.T) {
	r := newTestRegistry()
	data, err := r.Encode(&tickPacket{Tick: 0x12345678})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x7F, 0x00, 0x78, 0x56, 0x34, 0x12}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded bytes\n got %v\nwant %v", data, want)
	}
}

func TestRegistry_EncodeVariable(t *testing.T) {
	r := newTestRegistry()
	data, err := r.Encode(&chatPacket{Message: "gg"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x8E, 0x00, 0x06, 0x00, 'g', 'g'}
	if !bytes.Equal(data, want) {
		t.Errorf("encoded bytes\n got %v\nwant %v", data, want)
	}
}

func TestRegistry_DecodeNext_Stream(t *testing.T) {
	r := newTestRegistry()

	// A chat packet followed by a tick packet in one buffer.
	stream := []byte{
		0x8E, 0x00, 0x06, 0x00, 'g', 'g',
		0x7F, 0x00, 0x01, 0x00, 0x00, 0x00,
	}
	cur := wire.NewCursor(stream)

	first, err := r.DecodeNext(cur)
	if err != nil {
		t.Fatalf("first DecodeNext failed: %v", err)
	}
	chat, ok := first.(*chatPacket)
	if !ok {
		t.Fatalf("expected *chatPacket, got %T", first)
	}
	if chat.Message != "gg" {
		t.Errorf("message: got %q", chat.Message)
	}

	second, err := r.DecodeNext(cur)
	if err != nil {
		t.Fatalf("second DecodeNext failed: %v", err)
	}
	tick, ok := second.(*tickPacket)
	if !ok {
		t.Fatalf("expected *tickPacket, got %T", second)
	}
	if tick.Tick != 1 {
		t.Errorf("tick: got %d", tick.Tick)
	}
	if cur.Remaining() != 0 {
		t.Errorf("stream should be drained, %d bytes left", cur.Remaining())
	}
}

func TestRegistry_DecodeNext_Unknown(t *testing.T) {
	r := newTestRegistry()
	cur := wire.NewCursor([]byte{0xAB, 0xCD, 0x01, 0x02, 0x03})

	pkt, err := r.DecodeNext(cur)
	if err != nil {
		t.Fatalf("DecodeNext failed: %v", err)
	}
	unk, ok := pkt.(*Unknown)
	if !ok {
		t.Fatalf("expected *Unknown, got %T", pkt)
	}
	if unk.Tag != 0xCDAB {
		t.Errorf("tag: got 0x%04X", unk.Tag)
	}
	if !bytes.Equal(unk.Payload, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("payload: got %v", unk.Payload)
	}
	if cur.Remaining() != 0 {
		t.Errorf("unknown packet should consume the buffer")
	}
}

func TestRegistry_DecodeExpect(t *testing.T) {
	r := newTestRegistry()

	var tick tickPacket
	err := r.DecodeExpect(wire.NewCursor([]byte{0x7F, 0x00, 0x05, 0x00, 0x00, 0x00}), &tick)
	if err != nil {
		t.Fatalf("DecodeExpect failed: %v", err)
	}
	if tick.Tick != 5 {
		t.Errorf("tick: got %d", tick.Tick)
	}

	err = r.DecodeExpect(wire.NewCursor([]byte{0x8E, 0x00, 0x06, 0x00, 'g', 'g'}), &tick)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindMismatchedHeader}) {
		t.Fatalf("expected mismatched_header, got: %v", err)
	}
}

func TestRegistry_IsPing(t *testing.T) {
	r := newTestRegistry()
	if !r.IsPing(&tickPacket{}) {
		t.Errorf("tick packet should be a ping")
	}
	if r.IsPing(&chatPacket{}) {
		t.Errorf("chat packet should not be a ping")
	}
	if r.IsPing(&Unknown{}) {
		t.Errorf("unknown packet should not be a ping")
	}
}

func TestRegistry_Tag(t *testing.T) {
	r := newTestRegistry()
	tag, ok := r.Tag(&chatPacket{})
	if !ok || tag != 0x008E {
		t.Errorf("Tag: got 0x%04X ok=%v", tag, ok)
	}
	if _, ok := r.Tag(&struct{ X uint8 }{}); ok {
		t.Errorf("unregistered type should have no tag")
	}
}

func TestRegistry_RegisterConflicts(t *testing.T) {
	r := newTestRegistry()

	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	assertPanics("duplicate tag", func() {
		r.Register(0x007F, struct{ X uint8 }{})
	})
	assertPanics("duplicate type", func() {
		r.Register(0x9999, tickPacket{})
	})
	assertPanics("non-struct", func() {
		r.Register(0x9998, 42)
	})
}
