package codec

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/seaglass-games/ronet/errors"
	"github.com/seaglass-games/ronet/wire"
)

// testPoint is a hand-packed coordinate pair used to exercise the
// custom codec path.
type testPoint struct {
	X, Y uint8
}

func (p *testPoint) MarshalWire(w *wire.Writer) error {
	w.WriteU8(p.X)
	w.WriteU8(p.Y)
	return nil
}

func (p *testPoint) UnmarshalWire(c *wire.Cursor) error {
	x, err := c.ReadU8()
	if err != nil {
		return err
	}
	y, err := c.ReadU8()
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

func TestDecode_Simple(t *testing.T) {
	data := []byte{
		0x78, 0x56, 0x34, 0x12, // tick
		'A', 'r', 'c', 0, 0, 0, 0, 0, // name, zero padded
		0x01,       // color = green
		0xFE, 0xFF, // health = -2
	}

	var pkt simplePacket
	if err := NewDecoder().Decode(data, &pkt); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if pkt.Tick != 0x12345678 {
		t.Errorf("tick: got 0x%08X", pkt.Tick)
	}
	if pkt.Name != "Arc" {
		t.Errorf("name: got %q", pkt.Name)
	}
	if pkt.Color != testColor(1) {
		t.Errorf("color: got %d", pkt.Color)
	}
	if pkt.Health != -2 {
		t.Errorf("health: got %d", pkt.Health)
	}
}

func TestEncode_Simple(t *testing.T) {
	pkt := simplePacket{Tick: 0x12345678, Name: "Arc", Color: 1, Health: -2}
	got, err := NewEncoder().Encode(pkt)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := []byte{
		0x78, 0x56, 0x34, 0x12,
		'A', 'r', 'c', 0, 0, 0, 0, 0,
		0x01,
		0xFE, 0xFF,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("encoded bytes\n got %v\nwant %v", got, want)
	}
}

func TestDecode_Truncated(t *testing.T) {
	var pkt simplePacket
	err := NewDecoder().Decode([]byte{0x78, 0x56}, &pkt)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds}) {
		t.Fatalf("expected out_of_bounds, got: %v", err)
	}
}

func TestDecode_UnknownEnumValue(t *testing.T) {
	type colored struct {
		Color testColor
	}
	var pkt colored
	err := NewDecoder().Decode([]byte{0x07}, &pkt)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnknownTag}) {
		t.Fatalf("expected unknown_tag, got: %v", err)
	}
}

func TestEncode_UnknownEnumValue(t *testing.T) {
	type colored struct {
		Color testColor
	}
	_, err := NewEncoder().Encode(colored{Color: 9})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindUnknownTag}) {
		t.Fatalf("expected unknown_tag, got: %v", err)
	}
}

func TestWireOffset_RoundTrip(t *testing.T) {
	type slot struct {
		Index testIndex
	}

	got, err := NewEncoder().Encode(slot{Index: 0})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0x02, 0x00}) {
		t.Fatalf("logical 0 should be wire 2, got %v", got)
	}

	var back slot
	if err := NewDecoder().Decode(got, &back); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if back.Index != 0 {
		t.Errorf("round trip changed index to %d", back.Index)
	}
}

func TestWireOffset_Bounds(t *testing.T) {
	type slot struct {
		Index testIndex
	}

	// Logical 65534 would need wire 65536, one past the u16 ceiling.
	_, err := NewEncoder().Encode(slot{Index: 65534})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindOverflow}) {
		t.Fatalf("expected overflow, got: %v", err)
	}

	// Wire values 0 and 1 have no logical counterpart.
	var back slot
	err = NewDecoder().Decode([]byte{0x01, 0x00}, &back)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidData}) {
		t.Fatalf("expected invalid_data, got: %v", err)
	}

	got, err := NewEncoder().Encode(slot{Index: 65533})
	if err != nil {
		t.Fatalf("Encode of the largest legal index failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0xFF, 0xFF}) {
		t.Errorf("logical 65533 should be wire 65535, got %v", got)
	}
}

type framedMessage struct {
	PacketLength uint16 `ro:"packet_length"`
	Color        uint16
	Message      string `ro:"length_from:packet_length-6"`
}

func TestDecodeFramed_SelfLength(t *testing.T) {
	data := []byte{
		0x0B, 0x00, // total 11 = 2 header + 2 length + 2 color + 5 text
		0x2A, 0x00,
		'h', 'e', 'l', 'l', 'o',
		0xEE, 0xEE, // next packet, must stay untouched
	}

	cur := wire.NewCursor(data)
	var pkt framedMessage
	if err := NewDecoder().DecodeFramed(cur, &pkt, 2); err != nil {
		t.Fatalf("DecodeFramed failed: %v", err)
	}

	if pkt.Message != "hello" {
		t.Errorf("message: got %q", pkt.Message)
	}
	if pkt.Color != 0x2A {
		t.Errorf("color: got %d", pkt.Color)
	}
	if cur.Position() != 9 {
		t.Errorf("cursor should stop at the packet boundary, at %d", cur.Position())
	}
}

func TestDecodeFramed_LengthTooShort(t *testing.T) {
	data := []byte{0x03, 0x00, 0x2A, 0x00}
	var pkt framedMessage
	err := NewDecoder().DecodeFramed(wire.NewCursor(data), &pkt, 2)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMalformedLength}) {
		t.Fatalf("expected malformed_length, got: %v", err)
	}
}

func TestDecodeFramed_LengthPastBuffer(t *testing.T) {
	data := []byte{0xFF, 0x00, 0x2A, 0x00, 'h', 'i'}
	var pkt framedMessage
	err := NewDecoder().DecodeFramed(wire.NewCursor(data), &pkt, 2)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMalformedLength}) {
		t.Fatalf("expected malformed_length, got: %v", err)
	}
}

func TestDecodeFramed_UndecodedBytes(t *testing.T) {
	type framed struct {
		PacketLength uint16 `ro:"packet_length"`
		Value        uint8
	}

	// Declares 8 bytes total but the fields only cover 5.
	data := []byte{0x08, 0x00, 0x07, 0xAA, 0xBB, 0xCC}
	var pkt framed
	err := NewDecoder().DecodeFramed(wire.NewCursor(data), &pkt, 2)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMalformedLength}) {
		t.Fatalf("expected malformed_length, got: %v", err)
	}
}

func TestEncodeFramed_BackPatch(t *testing.T) {
	w := wire.NewWriter()
	pkt := framedMessage{Color: 0x2A, Message: "hello"}
	if err := NewEncoder().EncodeFramed(w, &pkt, 2); err != nil {
		t.Fatalf("EncodeFramed failed: %v", err)
	}

	want := []byte{0x0B, 0x00, 0x2A, 0x00, 'h', 'e', 'l', 'l', 'o'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("encoded bytes\n got %v\nwant %v", w.Bytes(), want)
	}
	if pkt.PacketLength != 11 {
		t.Errorf("length field should be patched in the value, got %d", pkt.PacketLength)
	}
}

func TestRepeatFrom_RoundTrip(t *testing.T) {
	type entry struct {
		Id    uint32
		Level uint16
	}
	type list struct {
		Count   uint16
		Entries []entry `ro:"repeat_from:count"`
	}

	original := list{
		Count:   2,
		Entries: []entry{{Id: 7, Level: 3}, {Id: 9, Level: 1}},
	}

	data, err := NewEncoder().Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(data) != 2+2*6 {
		t.Fatalf("unexpected encoded size %d", len(data))
	}

	var back list
	if err := NewDecoder().Decode(data, &back); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(back.Entries) != 2 || back.Entries[1].Id != 9 {
		t.Errorf("round trip lost entries: %+v", back.Entries)
	}
}

func TestRepeatFrom_CountMismatch(t *testing.T) {
	type list struct {
		Count   uint16
		Entries []uint32 `ro:"repeat_from:count"`
	}
	_, err := NewEncoder().Encode(list{Count: 3, Entries: []uint32{1}})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindInvalidData}) {
		t.Fatalf("expected invalid_data, got: %v", err)
	}
}

func TestRepeatFrom_CountBeyondBuffer(t *testing.T) {
	type entry struct {
		Id   uint64
		Name [24]uint8
	}
	type list struct {
		PacketLength uint16  `ro:"packet_length"`
		Count        uint32
		Entries      []entry `ro:"repeat_from:count"`
	}

	// A hostile count must be rejected before any slice is allocated.
	data := []byte{
		0x0C, 0x00, // total 12
		0xFF, 0xFF, 0xFF, 0xFF, // count 4294967295
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
	}

	cur := wire.NewCursor(data)
	var pkt list
	err := NewDecoder().DecodeFramed(cur, &pkt, 2)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMalformedLength}) {
		t.Fatalf("expected malformed_length, got: %v", err)
	}
}

func TestRepeatFrom_CountBeyondBufferVariable(t *testing.T) {
	type entry struct {
		Name string
	}
	type list struct {
		Count   uint32
		Entries []entry `ro:"repeat_from:count"`
	}

	var pkt list
	err := NewDecoder().Decode([]byte{0xFF, 0xFF, 0xFF, 0xFF, 'a', 0x00}, &pkt)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMalformedLength}) {
		t.Fatalf("expected malformed_length, got: %v", err)
	}
}

func TestRepeatRest_ConsumesRegion(t *testing.T) {
	type roster struct {
		PacketLength uint16   `ro:"packet_length"`
		Ids          []uint32 `ro:"repeat_rest"`
	}

	data := []byte{
		0x0C, 0x00, // total 12 = 2 header + 2 length + 8 ids
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0xEE, 0xEE, // next packet
	}

	cur := wire.NewCursor(data)
	var pkt roster
	if err := NewDecoder().DecodeFramed(cur, &pkt, 2); err != nil {
		t.Fatalf("DecodeFramed failed: %v", err)
	}
	if len(pkt.Ids) != 2 || pkt.Ids[0] != 1 || pkt.Ids[1] != 2 {
		t.Errorf("ids: got %v", pkt.Ids)
	}
	if cur.Remaining() != 2 {
		t.Errorf("trailing packet bytes should remain, %d left", cur.Remaining())
	}
}

func TestCustomCodec_RoundTrip(t *testing.T) {
	type move struct {
		From testPoint
		To   testPoint `ro:"length:4"` // padded region
	}

	original := move{From: testPoint{X: 3, Y: 9}, To: testPoint{X: 1, Y: 2}}
	data, err := NewEncoder().Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := []byte{3, 9, 1, 2, 0, 0}
	if !bytes.Equal(data, want) {
		t.Fatalf("encoded bytes\n got %v\nwant %v", data, want)
	}

	var back move
	if err := NewDecoder().Decode(data, &back); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if back != original {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestTerminatedString_RoundTrip(t *testing.T) {
	type chat struct {
		Text string
		Tail uint8
	}

	data, err := NewEncoder().Encode(chat{Text: "gg", Tail: 0xAB})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(data, []byte{'g', 'g', 0, 0xAB}) {
		t.Fatalf("encoded bytes: %v", data)
	}

	var back chat
	if err := NewDecoder().Decode(data, &back); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if back.Text != "gg" || back.Tail != 0xAB {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestDecode_NilTarget(t *testing.T) {
	err := NewDecoder().Decode([]byte{1}, (*simplePacket)(nil))
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindNilPointer, Phase: errors.PhaseDecode}) {
		t.Fatalf("expected nil_pointer, got: %v", err)
	}
}

func TestDecode_ErrorPath(t *testing.T) {
	type inner struct {
		Value uint32
	}
	type outer struct {
		Tag   uint16
		Inner inner
	}

	var pkt outer
	err := NewDecoder().Decode([]byte{0x01, 0x00, 0xFF}, &pkt)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected structured error, got %T", err)
	}
	if len(e.Path) == 0 || e.Path[len(e.Path)-1] != "value" {
		t.Errorf("expected path ending in \"value\", got %v", e.Path)
	}
}
