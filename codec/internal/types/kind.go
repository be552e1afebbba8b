package types

type Kind uint8

const (
	KindU8 Kind = iota
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindString
	KindBytes
	KindStruct
	KindArray
	KindSlice
	KindCustom
)

var kindNames = [...]string{
	KindU8:     "u8",
	KindI8:     "i8",
	KindU16:    "u16",
	KindI16:    "i16",
	KindU32:    "u32",
	KindI32:    "i32",
	KindU64:    "u64",
	KindI64:    "i64",
	KindString: "string",
	KindBytes:  "bytes",
	KindStruct: "struct",
	KindArray:  "array",
	KindSlice:  "slice",
	KindCustom: "custom",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsInteger reports whether k is a fixed-width integer kind.
func (k Kind) IsInteger() bool {
	return k <= KindI64
}

// ByteWidth returns the wire width of an integer kind, or 0 for
// variable-size kinds.
func (k Kind) ByteWidth() int {
	switch k {
	case KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32:
		return 4
	case KindU64, KindI64:
		return 8
	default:
		return 0
	}
}
