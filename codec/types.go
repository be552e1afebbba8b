package codec

import (
	"github.com/seaglass-games/ronet/codec/internal/types"
	"github.com/seaglass-games/ronet/wire"
)

type Kind = types.Kind

const (
	KindU8     = types.KindU8
	KindI8     = types.KindI8
	KindU16    = types.KindU16
	KindI16    = types.KindI16
	KindU32    = types.KindU32
	KindI32    = types.KindI32
	KindU64    = types.KindU64
	KindI64    = types.KindI64
	KindString = types.KindString
	KindBytes  = types.KindBytes
	KindStruct = types.KindStruct
	KindArray  = types.KindArray
	KindSlice  = types.KindSlice
	KindCustom = types.KindCustom
)

type CompiledType = types.CompiledType
type CompiledField = types.Field
type LengthPolicy = types.LengthPolicy
type EnumSpec = types.EnumSpec

// Marshaler is implemented by types with a hand-written wire format,
// such as bit-packed world positions. The compiler prefers it over the
// reflection-driven path.
type Marshaler interface {
	MarshalWire(w *wire.Writer) error
}

// Unmarshaler is the decoding counterpart of Marshaler. It must be
// implemented on the pointer receiver.
type Unmarshaler interface {
	UnmarshalWire(c *wire.Cursor) error
}
