package wire

import (
	stderrors "errors"
	"testing"

	"github.com/seaglass-games/ronet/errors"
)

func TestCursor_ReadPrimitives(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01})

	if v, err := c.ReadU8(); err != nil || v != 0x01 {
		t.Fatalf("ReadU8 = %v, %v", v, err)
	}
	if v, err := c.ReadU16(); err != nil || v != 0x1234 {
		t.Fatalf("ReadU16 = %#x, %v", v, err)
	}
	if v, err := c.ReadU32(); err != nil || v != 0x12345678 {
		t.Fatalf("ReadU32 = %#x, %v", v, err)
	}
	if v, err := c.ReadU64(); err != nil || v != 0x0123456789ABCDEF {
		t.Fatalf("ReadU64 = %#x, %v", v, err)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", c.Remaining())
	}
}

func TestCursor_ReadSigned(t *testing.T) {
	c := NewCursor([]byte{0xFF, 0xFE, 0xFF, 0xFD, 0xFF, 0xFF, 0xFF})

	if v, err := c.ReadI8(); err != nil || v != -1 {
		t.Fatalf("ReadI8 = %d, %v", v, err)
	}
	if v, err := c.ReadI16(); err != nil || v != -2 {
		t.Fatalf("ReadI16 = %d, %v", v, err)
	}
	if v, err := c.ReadI32(); err != nil || v != -3 {
		t.Fatalf("ReadI32 = %d, %v", v, err)
	}
}

func TestCursor_OutOfBounds(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})

	if _, err := c.ReadU32(); err == nil {
		t.Fatal("expected error reading u32 from 2 bytes")
	} else if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds}) {
		t.Fatalf("expected out_of_bounds, got %v", err)
	}

	// Offset must be unchanged after a failed read.
	if c.Position() != 0 {
		t.Errorf("Position = %d after failed read, want 0", c.Position())
	}
	if v, err := c.ReadU16(); err != nil || v != 0x0201 {
		t.Fatalf("ReadU16 after failed read = %#x, %v", v, err)
	}
}

func TestCursor_Limits(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5, 6})

	prev, err := c.PushLimit(3)
	if err != nil {
		t.Fatalf("PushLimit: %v", err)
	}
	if c.Remaining() != 3 {
		t.Fatalf("Remaining = %d inside region, want 3", c.Remaining())
	}
	if _, err := c.ReadBytes(4); err == nil {
		t.Fatal("expected error reading past region limit")
	}
	if err := c.Skip(3); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	c.PopLimit(prev)
	if c.Remaining() != 3 {
		t.Fatalf("Remaining = %d after PopLimit, want 3", c.Remaining())
	}
}

func TestCursor_PushLimitTooLarge(t *testing.T) {
	c := NewCursor([]byte{1, 2})
	if _, err := c.PushLimit(5); err == nil {
		t.Fatal("expected error narrowing beyond the buffer")
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0x7F)
	w.WriteU16(0xBEEF)
	w.WriteU32(0xDEADBEEF)
	w.WriteU64(0x0102030405060708)
	w.WriteBytes([]byte{0xAA, 0xBB})
	w.WriteZeros(2)

	c := NewCursor(w.Bytes())
	if v, _ := c.ReadU8(); v != 0x7F {
		t.Errorf("u8 = %#x", v)
	}
	if v, _ := c.ReadU16(); v != 0xBEEF {
		t.Errorf("u16 = %#x", v)
	}
	if v, _ := c.ReadU32(); v != 0xDEADBEEF {
		t.Errorf("u32 = %#x", v)
	}
	if v, _ := c.ReadU64(); v != 0x0102030405060708 {
		t.Errorf("u64 = %#x", v)
	}
	if b, _ := c.ReadBytes(4); b[0] != 0xAA || b[1] != 0xBB || b[2] != 0 || b[3] != 0 {
		t.Errorf("tail = %v", b)
	}
}

func TestWriter_Patch(t *testing.T) {
	w := NewWriter()
	w.WriteU16(0x0064)
	w.WriteU16(0) // length placeholder
	w.WriteBytes([]byte("hello"))
	w.PatchU16(2, uint16(w.Len()))

	c := NewCursor(w.Bytes())
	c.Skip(2)
	if v, _ := c.ReadU16(); v != 9 {
		t.Errorf("patched length = %d, want 9", v)
	}
}

func TestWriter_Pool(t *testing.T) {
	w := GetWriter()
	w.WriteU32(42)
	PutWriter(w)

	w2 := GetWriter()
	if w2.Len() != 0 {
		t.Errorf("pooled writer not reset: len=%d", w2.Len())
	}
	PutWriter(w2)
}
