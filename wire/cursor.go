package wire

import (
	"encoding/binary"

	"github.com/seaglass-games/ronet/errors"
)

// Cursor is a forward-only reader over a borrowed byte slice. It
// tracks the current offset and an optional region limit so a packet
// that declares its own total length can bound the reads of its
// trailing fields even when the underlying buffer holds further
// concatenated packets.
//
// A Cursor is created per decode and must not be shared across
// goroutines. All multi-byte reads are little-endian.
type Cursor struct {
	data  []byte
	off   int
	limit int // absolute offset one past the readable region
}

// NewCursor creates a Cursor over data. The readable region initially
// spans the whole slice.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data, limit: len(data)}
}

// Position returns the current byte offset from the start of the
// underlying buffer.
func (c *Cursor) Position() int {
	return c.off
}

// Remaining returns the number of readable bytes left in the current
// region.
func (c *Cursor) Remaining() int {
	return c.limit - c.off
}

// PushLimit narrows the readable region to the next n bytes and
// returns the previous region end for PopLimit. Fails when n exceeds
// the bytes remaining in the enclosing region.
func (c *Cursor) PushLimit(n int) (int, error) {
	if n < 0 || n > c.Remaining() {
		return 0, errors.OutOfBounds(errors.PhaseDecode, nil, n, c.Remaining())
	}
	prev := c.limit
	c.limit = c.off + n
	return prev, nil
}

// PopLimit restores a region end previously returned by PushLimit.
func (c *Cursor) PopLimit(prev int) {
	c.limit = prev
}

// ReadBytes returns the next n bytes and advances the offset. The
// returned slice aliases the cursor's buffer and must not be modified.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, n, c.Remaining())
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip advances the offset by n bytes without interpreting them.
func (c *Cursor) Skip(n int) error {
	_, err := c.ReadBytes(n)
	return err
}

// ReadU8 reads a single unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI8 reads a signed byte.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadI16 reads a little-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadI32 reads a little-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadI64 reads a little-endian int64.
func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}
