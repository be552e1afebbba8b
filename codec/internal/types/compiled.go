package types

import (
	"reflect"
)

// CompiledType is the immutable, reflection-derived description of how
// one Go type maps onto the wire. Compiled once per type and shared by
// every subsequent encode/decode.
type CompiledType struct {
	GoType reflect.Type
	Elem   *CompiledType // array/slice element
	Fields []Field       // struct fields in declared order
	Enum   *EnumSpec     // non-nil for validated enum integers
	Count  int           // fixed element count for arrays
	Adjust int64         // constant wire offset (wire = logical + Adjust)
	Kind   Kind

	// LengthField is the index into Fields of the field carrying the
	// packet's own total byte length, or -1.
	LengthField int
}

// Field describes one struct field and its length policy.
type Field struct {
	Type         *CompiledType
	Name         string // wire name, used in error paths
	GoIndex      int
	Length       LengthPolicy
	PacketLength bool
}

// LengthMode selects how a field's byte length or element count is
// determined.
type LengthMode uint8

const (
	// LengthImplicit: fixed-width types consume their natural size;
	// strings are null-terminated.
	LengthImplicit LengthMode = iota
	// LengthConst: a literal byte length from the schema.
	LengthConst
	// LengthFromField: byte length computed from a previously decoded
	// field of the same struct, plus a declared constant offset.
	LengthFromField
	// RepeatFromField: element count taken from a previously decoded
	// field.
	RepeatFromField
	// RepeatRest: consume elements until the enclosing region is
	// exhausted. Only valid for the last field of a struct.
	RepeatRest
)

// LengthPolicy carries the parameters for a LengthMode. Source is an
// index into the enclosing struct's Fields; the referenced field is
// guaranteed by the compiler to precede the field it feeds.
type LengthPolicy struct {
	Mode   LengthMode
	Const  int
	Source int
	Offset int
}

// EnumSpec is the declared numeric table of an enum type. Values maps
// each valid wire value to its variant name. Immutable after
// registration.
type EnumSpec struct {
	Name   string
	Values map[uint64]string
}

// FixedSize returns the total wire size of ct in bytes when every part
// of it is fixed-width, and ok=false otherwise.
func (ct *CompiledType) FixedSize() (int, bool) {
	switch ct.Kind {
	case KindU8, KindI8, KindU16, KindI16, KindU32, KindI32, KindU64, KindI64:
		return ct.Kind.ByteWidth(), true
	case KindBytes:
		return ct.Count, true
	case KindArray:
		elem, ok := ct.Elem.FixedSize()
		if !ok {
			return 0, false
		}
		return elem * ct.Count, true
	case KindStruct:
		total := 0
		for _, f := range ct.Fields {
			switch f.Length.Mode {
			case LengthImplicit:
				n, ok := f.Type.FixedSize()
				if !ok {
					return 0, false
				}
				total += n
			case LengthConst:
				total += f.Length.Const
			default:
				return 0, false
			}
		}
		return total, true
	default:
		return 0, false
	}
}
