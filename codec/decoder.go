package codec

import (
	"reflect"
	"strconv"

	"github.com/seaglass-games/ronet/codec/internal/types"
	"github.com/seaglass-games/ronet/errors"
	"github.com/seaglass-games/ronet/wire"
)

// Decoder reads wire bytes into Go values using compiled schemas.
// A Decoder is safe for concurrent use.
type Decoder struct {
	compiler *Compiler
}

func NewDecoder() *Decoder {
	return &Decoder{compiler: NewCompiler()}
}

// NewDecoderWithCompiler creates a Decoder sharing an existing schema
// cache.
func NewDecoderWithCompiler(c *Compiler) *Decoder {
	return &Decoder{compiler: c}
}

// Decode reads one value of out's type from the start of data. out
// must be a non-nil pointer. Trailing bytes beyond the value are left
// untouched; use a Cursor with DecodeFrom to continue reading them.
func (d *Decoder) Decode(data []byte, out any) error {
	return d.DecodeFrom(wire.NewCursor(data), out)
}

// DecodeFrom reads one value of out's type from the cursor's current
// position.
func (d *Decoder) DecodeFrom(cur *wire.Cursor, out any) error {
	ct, rv, err := d.prepare(out)
	if err != nil {
		return err
	}
	return d.decodeValue(cur, ct, rv, nil)
}

// DecodeFramed reads a packet body whose type may declare a
// self-describing length field. headerSize is the number of bytes
// already consumed ahead of the body (the two-byte header tag, when
// the caller stripped one); it counts toward the declared total. The
// declared length must be consumed exactly.
func (d *Decoder) DecodeFramed(cur *wire.Cursor, out any, headerSize int) error {
	ct, rv, err := d.prepare(out)
	if err != nil {
		return err
	}
	if ct.Kind != KindStruct {
		return errors.Unsupported(errors.PhaseDecode, "framed decode requires a struct type")
	}
	return d.decodeStruct(cur, ct, rv, nil, headerSize)
}

func (d *Decoder) prepare(out any) (*CompiledType, reflect.Value, error) {
	rv := reflect.ValueOf(out)
	if !rv.IsValid() {
		return nil, reflect.Value{}, errors.NilPointer(errors.PhaseDecode, "<nil>")
	}
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, reflect.Value{}, errors.NilPointer(errors.PhaseDecode, rv.Type().String())
	}
	ct, err := d.compiler.Compile(rv.Type().Elem())
	if err != nil {
		return nil, reflect.Value{}, err
	}
	return ct, rv.Elem(), nil
}

func (d *Decoder) decodeValue(cur *wire.Cursor, ct *CompiledType, v reflect.Value, path []string) error {
	switch ct.Kind {
	case KindStruct:
		return d.decodeStruct(cur, ct, v, path, 0)
	case KindCustom:
		if err := v.Addr().Interface().(Unmarshaler).UnmarshalWire(cur); err != nil {
			return errAt(err, path)
		}
		return nil
	case KindString:
		return d.decodeTerminatedString(cur, v, path)
	case KindBytes:
		b, err := cur.ReadBytes(ct.Count)
		if err != nil {
			return errAt(err, path)
		}
		reflect.Copy(v, reflect.ValueOf(b))
		return nil
	case KindArray:
		for i := 0; i < ct.Count; i++ {
			if err := d.decodeValue(cur, ct.Elem, v.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	case KindSlice:
		// Slices are only reachable through a repeat policy, which
		// the enclosing struct decode handles.
		return errors.Unsupported(errors.PhaseDecode, "slice without repeat policy")
	default:
		return d.decodeInteger(cur, ct, v, path)
	}
}

func (d *Decoder) decodeStruct(cur *wire.Cursor, ct *CompiledType, v reflect.Value, path []string, headerSize int) error {
	start := cur.Position()
	prevLimit := 0
	limited := false

	for i := range ct.Fields {
		f := &ct.Fields[i]
		fv := v.Field(f.GoIndex)
		fpath := append(path, f.Name)

		if err := d.decodeField(cur, ct, f, v, fv, fpath); err != nil {
			return err
		}

		if i == ct.LengthField {
			declared := int(fv.Uint())
			consumed := cur.Position() - start
			region := declared - headerSize - consumed
			if region < 0 {
				return errors.MalformedLength(fpath,
					"declared length %d is shorter than the packet's fixed fields", declared)
			}
			prev, err := cur.PushLimit(region)
			if err != nil {
				return errors.MalformedLength(fpath,
					"declared length %d exceeds the %d bytes available", declared, headerSize+consumed+cur.Remaining())
			}
			prevLimit = prev
			limited = true
		}
	}

	if limited {
		if cur.Remaining() != 0 {
			return errors.MalformedLength(path,
				"%d undecoded bytes inside the declared packet length", cur.Remaining())
		}
		cur.PopLimit(prevLimit)
	}
	return nil
}

func (d *Decoder) decodeField(cur *wire.Cursor, ct *CompiledType, f *CompiledField, owner, fv reflect.Value, path []string) error {
	switch f.Length.Mode {
	case types.LengthImplicit:
		return d.decodeValue(cur, f.Type, fv, path)

	case types.LengthConst:
		return d.decodeSized(cur, f.Type, fv, path, f.Length.Const)

	case types.LengthFromField:
		n := int(sourceValue(ct, owner, f.Length.Source)) + f.Length.Offset
		if n < 0 {
			return errors.MalformedLength(path, "derived length %d is negative", n)
		}
		return d.decodeSized(cur, f.Type, fv, path, n)

	case types.RepeatFromField:
		count := int(sourceValue(ct, owner, f.Length.Source)) + f.Length.Offset
		if count < 0 {
			return errors.MalformedLength(path, "derived element count %d is negative", count)
		}
		return d.decodeCounted(cur, f.Type, fv, path, count)

	case types.RepeatRest:
		return d.decodeRemaining(cur, f.Type, fv, path)

	default:
		return errors.Unsupported(errors.PhaseDecode, "unhandled length mode")
	}
}

// decodeSized decodes a value confined to an exact byte region. A
// string shorter than its region is cut at the first terminator; a
// custom type's unread padding is skipped.
func (d *Decoder) decodeSized(cur *wire.Cursor, ct *CompiledType, v reflect.Value, path []string, n int) error {
	switch ct.Kind {
	case KindString:
		b, err := cur.ReadBytes(n)
		if err != nil {
			return errAt(err, path)
		}
		v.SetString(trimAtNul(b))
		return nil
	case KindCustom:
		prev, err := cur.PushLimit(n)
		if err != nil {
			return errAt(err, path)
		}
		if err := v.Addr().Interface().(Unmarshaler).UnmarshalWire(cur); err != nil {
			return errAt(err, path)
		}
		if err := cur.Skip(cur.Remaining()); err != nil {
			return errAt(err, path)
		}
		cur.PopLimit(prev)
		return nil
	default:
		return errors.Unsupported(errors.PhaseDecode, "length hint on a fixed-width type")
	}
}

func (d *Decoder) decodeCounted(cur *wire.Cursor, ct *CompiledType, v reflect.Value, path []string, count int) error {
	// The count comes straight off the wire. Bound it against the
	// bytes actually present before allocating anything.
	if size, fixed := ct.Elem.FixedSize(); fixed {
		if size == 0 {
			if count > 0 {
				return errors.InvalidData(errors.PhaseDecode, path, "zero-width element would repeat forever")
			}
		} else if count > cur.Remaining()/size {
			return errors.MalformedLength(path,
				"declared count %d of %d-byte elements exceeds the %d bytes remaining", count, size, cur.Remaining())
		}
	} else if count > cur.Remaining() {
		return errors.MalformedLength(path,
			"declared count %d exceeds the %d bytes remaining", count, cur.Remaining())
	}

	slice := reflect.MakeSlice(ct.GoType, count, count)
	for i := 0; i < count; i++ {
		if err := d.decodeValue(cur, ct.Elem, slice.Index(i), indexPath(path, i)); err != nil {
			return err
		}
	}
	v.Set(slice)
	return nil
}

func (d *Decoder) decodeRemaining(cur *wire.Cursor, ct *CompiledType, v reflect.Value, path []string) error {
	slice := reflect.MakeSlice(ct.GoType, 0, 0)
	for i := 0; cur.Remaining() > 0; i++ {
		before := cur.Position()
		elem := reflect.New(ct.Elem.GoType).Elem()
		if err := d.decodeValue(cur, ct.Elem, elem, indexPath(path, i)); err != nil {
			return err
		}
		if cur.Position() == before {
			return errors.InvalidData(errors.PhaseDecode, path, "zero-width element would repeat forever")
		}
		slice = reflect.Append(slice, elem)
	}
	v.Set(slice)
	return nil
}

func (d *Decoder) decodeInteger(cur *wire.Cursor, ct *CompiledType, v reflect.Value, path []string) error {
	var (
		wireVal uint64
		err     error
	)
	switch ct.Kind {
	case KindU8, KindI8:
		var b uint8
		b, err = cur.ReadU8()
		wireVal = uint64(b)
	case KindU16, KindI16:
		var u uint16
		u, err = cur.ReadU16()
		wireVal = uint64(u)
	case KindU32, KindI32:
		var u uint32
		u, err = cur.ReadU32()
		wireVal = uint64(u)
	case KindU64, KindI64:
		wireVal, err = cur.ReadU64()
	}
	if err != nil {
		return errAt(err, path)
	}

	if ct.Enum != nil {
		if _, ok := ct.Enum.Values[wireVal]; !ok {
			return errors.UnknownTag(errors.PhaseDecode, path, wireVal, ct.Enum.Name)
		}
	}

	switch ct.Kind {
	case KindI8, KindI16, KindI32, KindI64:
		// Sign-extend from the wire width before any adjustment.
		shift := 64 - uint(ct.Kind.ByteWidth())*8
		logical := int64(wireVal<<shift)>>shift - ct.Adjust
		v.SetInt(logical)
	default:
		if ct.Adjust > 0 && wireVal < uint64(ct.Adjust) {
			return errors.InvalidData(errors.PhaseDecode, path,
				"wire value below the type's minimum")
		}
		v.SetUint(uint64(int64(wireVal) - ct.Adjust))
	}
	return nil
}

func (d *Decoder) decodeTerminatedString(cur *wire.Cursor, v reflect.Value, path []string) error {
	var buf []byte
	for {
		b, err := cur.ReadU8()
		if err != nil {
			return errAt(err, path)
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	v.SetString(string(buf))
	return nil
}

// sourceValue reads the already-decoded integer field that a length or
// repeat policy references.
func sourceValue(ct *CompiledType, owner reflect.Value, source int) int64 {
	fv := owner.Field(ct.Fields[source].GoIndex)
	switch fv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fv.Int()
	default:
		return int64(fv.Uint())
	}
}

func trimAtNul(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func indexPath(path []string, i int) []string {
	if len(path) == 0 {
		return []string{"[" + strconv.Itoa(i) + "]"}
	}
	indexed := make([]string, len(path))
	copy(indexed, path)
	indexed[len(indexed)-1] += "[" + strconv.Itoa(i) + "]"
	return indexed
}

// errAt attaches a field path to a bare cursor error.
func errAt(err error, path []string) error {
	e, ok := err.(*errors.Error)
	if !ok || len(e.Path) > 0 || len(path) == 0 {
		return err
	}
	clone := *e
	clone.Path = append([]string(nil), path...)
	return &clone
}
