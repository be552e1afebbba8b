package codec

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/seaglass-games/ronet/codec/internal/types"
)

// Process-wide tables consulted at schema compilation. Populated from
// init functions before any decoding starts and read-only afterwards.
var (
	registryMu     sync.RWMutex
	enumRegistry   = make(map[reflect.Type]*types.EnumSpec)
	offsetRegistry = make(map[reflect.Type]int64)
)

// RegisterEnum declares the numeric table of an enum type. The zero
// argument fixes the Go type; variants maps every valid wire value to
// its variant name. The enum's wire width is the width of the
// underlying integer type. Decoding a wire value absent from the table
// fails with unknown_tag.
//
// RegisterEnum panics when the type is not an integer or is already
// registered; it is meant to be called from init functions.
func RegisterEnum(zero any, variants map[uint64]string) {
	t := reflect.TypeOf(zero)
	if t == nil || !isIntegerKind(t.Kind()) {
		panic(fmt.Sprintf("codec: RegisterEnum of non-integer type %v", t))
	}
	if len(variants) == 0 {
		panic(fmt.Sprintf("codec: RegisterEnum of %v with no variants", t))
	}

	values := make(map[uint64]string, len(variants))
	for v, name := range variants {
		values[v] = name
	}
	spec := &types.EnumSpec{Name: t.Name(), Values: values}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := enumRegistry[t]; dup {
		panic(fmt.Sprintf("codec: RegisterEnum called twice for %v", t))
	}
	enumRegistry[t] = spec
}

// RegisterWireOffset declares a constant offset between a type's
// logical value and its on-wire representation: wire = logical +
// offset. The classic example is the inventory index, which is always
// 2 greater on the wire than in memory.
//
// Like RegisterEnum, it panics on misuse and is meant for init
// functions.
func RegisterWireOffset(zero any, offset int64) {
	t := reflect.TypeOf(zero)
	if t == nil || !isIntegerKind(t.Kind()) {
		panic(fmt.Sprintf("codec: RegisterWireOffset of non-integer type %v", t))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := offsetRegistry[t]; dup {
		panic(fmt.Sprintf("codec: RegisterWireOffset called twice for %v", t))
	}
	offsetRegistry[t] = offset
}

func lookupEnum(t reflect.Type) *types.EnumSpec {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return enumRegistry[t]
}

func lookupWireOffset(t reflect.Type) int64 {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return offsetRegistry[t]
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}
