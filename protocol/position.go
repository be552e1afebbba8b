package protocol

import (
	"github.com/seaglass-games/ronet/wire"
)

// WorldPosition is a map coordinate packed into three bytes. Each axis
// occupies ten bits; the low nibble of the last byte carries a facing
// direction that the client ignores.
type WorldPosition struct {
	X uint16
	Y uint16
}

func (p *WorldPosition) MarshalWire(w *wire.Writer) error {
	w.WriteU8(uint8(p.X >> 2))
	w.WriteU8(uint8(p.X<<6) | uint8((p.Y>>4)&0x3F))
	w.WriteU8(uint8(p.Y << 4))
	return nil
}

func (p *WorldPosition) UnmarshalWire(c *wire.Cursor) error {
	b, err := c.ReadBytes(3)
	if err != nil {
		return err
	}
	p.X = uint16(b[1]>>6) | uint16(b[0])<<2
	p.Y = uint16(b[2]>>4) | uint16(b[1]&0x3F)<<4
	return nil
}

// WorldPosition2 packs a movement segment, six bytes holding the
// source and destination coordinates back to back.
type WorldPosition2 struct {
	FromX uint16
	FromY uint16
	ToX   uint16
	ToY   uint16
}

func (p *WorldPosition2) MarshalWire(w *wire.Writer) error {
	w.WriteU8(uint8(p.FromX >> 2))
	w.WriteU8(uint8(p.FromX<<6) | uint8((p.FromY>>4)&0x3F))
	w.WriteU8(uint8(p.FromY<<4) | uint8((p.ToX>>6)&0x0F))
	w.WriteU8(uint8(p.ToX<<2) | uint8((p.ToY>>8)&0x03))
	w.WriteU8(uint8(p.ToY))
	w.WriteU8(0)
	return nil
}

func (p *WorldPosition2) UnmarshalWire(c *wire.Cursor) error {
	b, err := c.ReadBytes(6)
	if err != nil {
		return err
	}
	p.FromX = uint16(b[1]>>6) | uint16(b[0])<<2
	p.FromY = uint16(b[2]>>4) | uint16(b[1]&0x3F)<<4
	p.ToX = uint16(b[3]>>2) | uint16(b[2]&0x0F)<<6
	p.ToY = uint16(b[4]) | uint16(b[3]&0x03)<<8
	return nil
}
