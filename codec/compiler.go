package codec

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/seaglass-games/ronet/codec/internal/types"
	"github.com/seaglass-games/ronet/errors"
)

// Compiler turns Go types and their `ro` struct tags into immutable
// CompiledType tables. Compilation happens once per type; the cache is
// safe for concurrent use.
type Compiler struct {
	cache sync.Map // reflect.Type -> *CompiledType
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

var (
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)

// Compile returns the compiled schema for t, building it on first use.
func (c *Compiler) Compile(t reflect.Type) (*CompiledType, error) {
	if t == nil {
		return nil, errors.NilPointer(errors.PhaseCompile, "<nil>")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if cached, ok := c.cache.Load(t); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := c.compile(t, nil)
	if err != nil {
		return nil, err
	}

	c.cache.Store(t, ct)
	return ct, nil
}

func (c *Compiler) compile(t reflect.Type, path []string) (*CompiledType, error) {
	// Hand-written wire formats take precedence over reflection.
	if reflect.PointerTo(t).Implements(unmarshalerType) && reflect.PointerTo(t).Implements(marshalerType) {
		return &CompiledType{GoType: t, Kind: KindCustom, LengthField: -1}, nil
	}

	switch t.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return c.compileInteger(t)
	case reflect.String:
		return &CompiledType{GoType: t, Kind: KindString, LengthField: -1}, nil
	case reflect.Array:
		return c.compileArray(t, path)
	case reflect.Slice:
		elem, err := c.compile(t.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &CompiledType{GoType: t, Kind: KindSlice, Elem: elem, LengthField: -1}, nil
	case reflect.Struct:
		return c.compileStruct(t, path)
	default:
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			GoType(t.String()).
			Detail("type has no wire representation").
			Build()
	}
}

var integerKinds = map[reflect.Kind]Kind{
	reflect.Uint8:  KindU8,
	reflect.Int8:   KindI8,
	reflect.Uint16: KindU16,
	reflect.Int16:  KindI16,
	reflect.Uint32: KindU32,
	reflect.Int32:  KindI32,
	reflect.Uint64: KindU64,
	reflect.Int64:  KindI64,
}

func (c *Compiler) compileInteger(t reflect.Type) (*CompiledType, error) {
	ct := &CompiledType{
		GoType:      t,
		Kind:        integerKinds[t.Kind()],
		Enum:        lookupEnum(t),
		Adjust:      lookupWireOffset(t),
		LengthField: -1,
	}
	return ct, nil
}

func (c *Compiler) compileArray(t reflect.Type, path []string) (*CompiledType, error) {
	if t.Elem().Kind() == reflect.Uint8 && lookupWireOffset(t.Elem()) == 0 && lookupEnum(t.Elem()) == nil {
		return &CompiledType{GoType: t, Kind: KindBytes, Count: t.Len(), LengthField: -1}, nil
	}
	elem, err := c.compile(t.Elem(), path)
	if err != nil {
		return nil, err
	}
	return &CompiledType{GoType: t, Kind: KindArray, Elem: elem, Count: t.Len(), LengthField: -1}, nil
}

func (c *Compiler) compileStruct(t reflect.Type, path []string) (*CompiledType, error) {
	ct := &CompiledType{GoType: t, Kind: KindStruct, LengthField: -1}
	byName := make(map[string]int)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := snakeCase(sf.Name)
		fieldPath := append(path, name)

		fieldType, err := c.compile(sf.Type, fieldPath)
		if err != nil {
			return nil, err
		}

		field := types.Field{
			Type:    fieldType,
			Name:    name,
			GoIndex: i,
		}

		if tag, ok := sf.Tag.Lookup("ro"); ok {
			if err := parseTag(tag, &field, byName, fieldPath); err != nil {
				return nil, err
			}
		}

		if err := validateField(ct, &field, fieldPath); err != nil {
			return nil, err
		}

		if field.PacketLength {
			if len(path) > 0 {
				return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
					Path(fieldPath...).
					Detail("packet_length is only valid at the packet's top level").
					Build()
			}
			if ct.LengthField >= 0 {
				return nil, errors.New(errors.PhaseCompile, errors.KindRegistration).
					Path(fieldPath...).
					Detail("duplicate packet_length field").
					Build()
			}
			ct.LengthField = len(ct.Fields)
		}

		byName[name] = len(ct.Fields)
		ct.Fields = append(ct.Fields, field)
	}

	// Repeat-until-exhausted is only well-defined for the final field:
	// anything after it would start at an unknowable offset.
	for i, f := range ct.Fields {
		if f.Length.Mode == types.RepeatRest && i != len(ct.Fields)-1 {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(append(path, f.Name)...).
				Detail("repeat_rest must be the last field").
				Build()
		}
	}

	return ct, nil
}

// parseTag interprets the comma-separated `ro` tag. Supported forms:
//
//	ro:"length:24"                  fixed byte region
//	ro:"length_from:packet_length-4" region derived from a prior field
//	ro:"repeat_from:quest_count"     element count from a prior field
//	ro:"repeat_rest"                 consume the remaining region
//	ro:"packet_length"               field holds the packet's own size
func parseTag(tag string, field *types.Field, byName map[string]int, path []string) error {
	for _, token := range strings.Split(tag, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		key, arg, _ := strings.Cut(token, ":")
		switch key {
		case "length":
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return errors.New(errors.PhaseCompile, errors.KindInvalidData).
					Path(path...).
					Detail("bad length %q", arg).
					Build()
			}
			field.Length = types.LengthPolicy{Mode: types.LengthConst, Const: n}
		case "length_from":
			source, offset, err := parseFieldExpr(arg, byName, path)
			if err != nil {
				return err
			}
			field.Length = types.LengthPolicy{Mode: types.LengthFromField, Source: source, Offset: offset}
		case "repeat_from":
			source, offset, err := parseFieldExpr(arg, byName, path)
			if err != nil {
				return err
			}
			field.Length = types.LengthPolicy{Mode: types.RepeatFromField, Source: source, Offset: offset}
		case "repeat_rest":
			field.Length = types.LengthPolicy{Mode: types.RepeatRest}
		case "packet_length":
			field.PacketLength = true
		default:
			return errors.New(errors.PhaseCompile, errors.KindInvalidData).
				Path(path...).
				Detail("unknown tag directive %q", key).
				Build()
		}
	}
	return nil
}

// parseFieldExpr parses "field_name" with an optional trailing
// "+N"/"-N" adjustment. The named field must already have been
// declared: a field can never depend on one declared after it.
func parseFieldExpr(expr string, byName map[string]int, path []string) (source, offset int, err error) {
	name := expr
	if i := strings.IndexAny(expr, "+-"); i > 0 {
		name = expr[:i]
		offset, err = strconv.Atoi(expr[i:])
		if err != nil {
			return 0, 0, errors.New(errors.PhaseCompile, errors.KindInvalidData).
				Path(path...).
				Detail("bad offset in %q", expr).
				Build()
		}
	}

	idx, ok := byName[name]
	if !ok {
		return 0, 0, errors.FieldUnknown(path, name)
	}
	return idx, offset, nil
}

func validateField(ct *CompiledType, field *types.Field, path []string) error {
	switch field.Length.Mode {
	case types.LengthConst, types.LengthFromField:
		if field.Type.Kind != KindString && field.Type.Kind != KindCustom {
			return errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				GoType(field.Type.GoType.String()).
				Detail("length hints apply to strings and custom wire types").
				Build()
		}
	case types.RepeatFromField, types.RepeatRest:
		if field.Type.Kind != KindSlice {
			return errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				GoType(field.Type.GoType.String()).
				Detail("repeat policies apply to slices").
				Build()
		}
	case types.LengthImplicit:
		if field.Type.Kind == KindSlice {
			return errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				GoType(field.Type.GoType.String()).
				Detail("slice fields need repeat_from or repeat_rest").
				Build()
		}
	}

	if field.Length.Mode == types.LengthFromField || field.Length.Mode == types.RepeatFromField {
		source := ct.Fields[field.Length.Source]
		if !source.Type.Kind.IsInteger() {
			return errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				Detail("source field %q is not an integer", source.Name).
				Build()
		}
	}

	if field.PacketLength {
		if field.Type.Kind != KindU16 && field.Type.Kind != KindU32 {
			return errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				Detail("packet_length field must be u16 or u32").
				Build()
		}
	}

	return nil
}

// snakeCase converts a Go field name to the wire naming used in error
// paths and tag references, e.g. "PacketLength" -> "packet_length".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			prevUpper := i > 0 && unicode.IsUpper(rune(name[i-1]))
			nextLower := i+1 < len(name) && !unicode.IsUpper(rune(name[i+1]))
			if i > 0 && (!prevUpper || nextLower) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return strings.TrimPrefix(b.String(), "_")
}
