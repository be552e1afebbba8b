package codec

import (
	"math"
	"reflect"
	"strconv"

	"github.com/seaglass-games/ronet/codec/internal/types"
	"github.com/seaglass-games/ronet/errors"
	"github.com/seaglass-games/ronet/wire"
)

// Encoder writes Go values as wire bytes using compiled schemas.
// An Encoder is safe for concurrent use.
type Encoder struct {
	compiler *Compiler
}

func NewEncoder() *Encoder {
	return &Encoder{compiler: NewCompiler()}
}

// NewEncoderWithCompiler creates an Encoder sharing an existing schema
// cache.
func NewEncoderWithCompiler(c *Compiler) *Encoder {
	return &Encoder{compiler: c}
}

// Encode returns the wire bytes of v.
func (e *Encoder) Encode(v any) ([]byte, error) {
	w := wire.GetWriter()
	defer wire.PutWriter(w)
	if err := e.EncodeTo(w, v); err != nil {
		return nil, err
	}
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

// EncodeTo appends the wire bytes of v to w.
func (e *Encoder) EncodeTo(w *wire.Writer, v any) error {
	ct, rv, err := e.prepare(v)
	if err != nil {
		return err
	}
	return e.encodeValue(w, ct, rv, nil)
}

// EncodeFramed appends the wire bytes of a packet body to w. When the
// body's type declares a self-describing length field, the field is
// back-patched with the finished total size plus headerSize, so the
// caller never fills it in.
func (e *Encoder) EncodeFramed(w *wire.Writer, v any, headerSize int) error {
	ct, rv, err := e.prepare(v)
	if err != nil {
		return err
	}
	if ct.Kind != KindStruct {
		return errors.Unsupported(errors.PhaseEncode, "framed encode requires a struct type")
	}
	return e.encodeStruct(w, ct, rv, nil, headerSize)
}

func (e *Encoder) prepare(v any) (*CompiledType, reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, reflect.Value{}, errors.NilPointer(errors.PhaseEncode, "<nil>")
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, reflect.Value{}, errors.NilPointer(errors.PhaseEncode, rv.Type().String())
		}
		rv = rv.Elem()
	}
	ct, err := e.compiler.Compile(rv.Type())
	if err != nil {
		return nil, reflect.Value{}, err
	}
	// Custom marshalers need an addressable receiver.
	if !rv.CanAddr() {
		addr := reflect.New(rv.Type())
		addr.Elem().Set(rv)
		rv = addr.Elem()
	}
	return ct, rv, nil
}

func (e *Encoder) encodeValue(w *wire.Writer, ct *CompiledType, v reflect.Value, path []string) error {
	switch ct.Kind {
	case KindStruct:
		return e.encodeStruct(w, ct, v, path, 0)
	case KindCustom:
		if err := v.Addr().Interface().(Marshaler).MarshalWire(w); err != nil {
			return errAt(err, path)
		}
		return nil
	case KindString:
		w.WriteBytes([]byte(v.String()))
		w.WriteU8(0)
		return nil
	case KindBytes:
		b := make([]byte, ct.Count)
		reflect.Copy(reflect.ValueOf(b), v)
		w.WriteBytes(b)
		return nil
	case KindArray:
		for i := 0; i < ct.Count; i++ {
			if err := e.encodeValue(w, ct.Elem, v.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	case KindSlice:
		return errors.Unsupported(errors.PhaseEncode, "slice without repeat policy")
	default:
		return e.encodeInteger(w, ct, v, path)
	}
}

func (e *Encoder) encodeStruct(w *wire.Writer, ct *CompiledType, v reflect.Value, path []string, headerSize int) error {
	start := w.Len()
	lengthPos := -1

	for i := range ct.Fields {
		f := &ct.Fields[i]
		fv := v.Field(f.GoIndex)
		fpath := append(path, f.Name)

		if i == ct.LengthField {
			// Placeholder, patched once the body is complete.
			lengthPos = w.Len()
			if f.Type.Kind == KindU16 {
				w.WriteU16(0)
			} else {
				w.WriteU32(0)
			}
			continue
		}

		if err := e.encodeField(w, ct, f, v, fv, fpath); err != nil {
			return err
		}
	}

	if lengthPos >= 0 {
		total := w.Len() - start + headerSize
		f := &ct.Fields[ct.LengthField]
		if f.Type.Kind == KindU16 {
			if total > math.MaxUint16 {
				return errors.Overflow(errors.PhaseEncode, append(path, f.Name), total, "u16")
			}
			w.PatchU16(lengthPos, uint16(total))
		} else {
			w.PatchU32(lengthPos, uint32(total))
		}
		v.Field(f.GoIndex).SetUint(uint64(total))
	}
	return nil
}

func (e *Encoder) encodeField(w *wire.Writer, ct *CompiledType, f *CompiledField, owner, fv reflect.Value, path []string) error {
	switch f.Length.Mode {
	case types.LengthImplicit:
		return e.encodeValue(w, f.Type, fv, path)

	case types.LengthConst:
		return e.encodeSized(w, f.Type, fv, path, f.Length.Const)

	case types.LengthFromField:
		if f.Length.Source == ct.LengthField {
			// The region derives from the packet's own total length,
			// which is known only after the body is written. The
			// content itself defines the region, so strings go out as
			// raw bytes with no terminator or padding.
			if f.Type.Kind == KindString {
				w.WriteBytes([]byte(fv.String()))
				return nil
			}
			return e.encodeValue(w, f.Type, fv, path)
		}
		n := int(sourceValue(ct, owner, f.Length.Source)) + f.Length.Offset
		if n < 0 {
			return errors.MalformedLength(path, "derived length %d is negative", n)
		}
		return e.encodeSized(w, f.Type, fv, path, n)

	case types.RepeatFromField:
		count := int(sourceValue(ct, owner, f.Length.Source)) + f.Length.Offset
		if fv.Len() != count {
			return errors.InvalidData(errors.PhaseEncode, path,
				"slice length disagrees with its count field")
		}
		return e.encodeElements(w, f.Type, fv, path)

	case types.RepeatRest:
		return e.encodeElements(w, f.Type, fv, path)

	default:
		return errors.Unsupported(errors.PhaseEncode, "unhandled length mode")
	}
}

// encodeSized writes a value into an exact byte region, zero-padding
// short content. Content longer than the region is an error rather
// than a silent truncation.
func (e *Encoder) encodeSized(w *wire.Writer, ct *CompiledType, v reflect.Value, path []string, n int) error {
	switch ct.Kind {
	case KindString:
		s := v.String()
		if len(s) > n {
			return errors.Overflow(errors.PhaseEncode, path, len(s), "string region of "+strconv.Itoa(n)+" bytes")
		}
		w.WriteBytes([]byte(s))
		w.WriteZeros(n - len(s))
		return nil
	case KindCustom:
		start := w.Len()
		if err := v.Addr().Interface().(Marshaler).MarshalWire(w); err != nil {
			return errAt(err, path)
		}
		written := w.Len() - start
		if written > n {
			return errors.Overflow(errors.PhaseEncode, path, written, "region of "+strconv.Itoa(n)+" bytes")
		}
		w.WriteZeros(n - written)
		return nil
	default:
		return errors.Unsupported(errors.PhaseEncode, "length hint on a fixed-width type")
	}
}

func (e *Encoder) encodeElements(w *wire.Writer, ct *CompiledType, v reflect.Value, path []string) error {
	for i := 0; i < v.Len(); i++ {
		if err := e.encodeValue(w, ct.Elem, v.Index(i), indexPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeInteger(w *wire.Writer, ct *CompiledType, v reflect.Value, path []string) error {
	var logical int64
	signed := false
	switch v.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		logical = v.Int()
		signed = true
	default:
		u := v.Uint()
		if u > math.MaxInt64 {
			// Only reachable for u64 values; no registered offset
			// applies at that width, write straight through.
			if ct.Enum != nil {
				if _, ok := ct.Enum.Values[u]; !ok {
					return errors.UnknownTag(errors.PhaseEncode, path, u, ct.Enum.Name)
				}
			}
			w.WriteU64(u)
			return nil
		}
		logical = int64(u)
	}

	adjusted := logical + ct.Adjust

	width := ct.Kind.ByteWidth()
	if signed {
		min, max := int64(-1)<<(uint(width)*8-1), int64(1)<<(uint(width)*8-1)-1
		if adjusted < min || adjusted > max {
			return errors.Overflow(errors.PhaseEncode, path, adjusted, ct.Kind.String())
		}
	} else {
		var max uint64 = math.MaxUint64
		if width < 8 {
			max = uint64(1)<<(uint(width)*8) - 1
		}
		if adjusted < 0 || uint64(adjusted) > max {
			return errors.Overflow(errors.PhaseEncode, path, adjusted, ct.Kind.String())
		}
	}

	wireVal := uint64(adjusted) & widthMask(width)
	if ct.Enum != nil {
		if _, ok := ct.Enum.Values[wireVal]; !ok {
			return errors.UnknownTag(errors.PhaseEncode, path, wireVal, ct.Enum.Name)
		}
	}

	switch width {
	case 1:
		w.WriteU8(uint8(wireVal))
	case 2:
		w.WriteU16(uint16(wireVal))
	case 4:
		w.WriteU32(uint32(wireVal))
	default:
		w.WriteU64(wireVal)
	}
	return nil
}

func widthMask(width int) uint64 {
	if width >= 8 {
		return math.MaxUint64
	}
	return uint64(1)<<(uint(width)*8) - 1
}
