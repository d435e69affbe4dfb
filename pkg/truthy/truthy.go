// Package truthy implements "yessy", a stricter truthiness test.
//
// A value is yessy when it is truthy in the JavaScript sense and, for
// containers, actually holds something: an empty list, a list of only falsy
// elements and a mapping without (non-empty) keys are all not yessy.
//
// Values are classified into a small tagged union, Value, so the rule for
// each variant is explicit rather than probed at run time:
//
//	Null      never yessy
//	Bool      its value
//	Number    non-zero and not NaN
//	String    non-empty
//	Sequence  some element is truthy
//	Mapping   some key is non-empty
//	Opaque    always (errors, funcs, channels)
package truthy

import (
	"fmt"
	"math"
	"reflect"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a classified value. The zero Value is Null.
type Value struct {
	kind  Kind
	b     bool
	n     float64
	s     string
	items []Value
	keys  []string
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Sequence returns a list of values.
func Sequence(items ...Value) Value { return Value{kind: KindSequence, items: items} }

// Mapping returns a mapping with the given keys. Only keys matter for yessy.
func Mapping(keys ...string) Value { return Value{kind: KindMapping, keys: keys} }

// Opaque returns a value that is always truthy and yessy.
func Opaque() Value { return Value{kind: KindOpaque} }

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// Len returns the length of a string, sequence or mapping, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.s)
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.keys)
	}
	return 0
}

// Truthy reports JavaScript truthiness: null, false, 0, NaN and "" are
// falsy; containers and opaque values are truthy even when empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0 && !math.IsNaN(v.n)
	case KindString:
		return v.s != ""
	default:
		return true
	}
}

// Yessy reports whether v is truthy and, for containers, non-empty.
func (v Value) Yessy() bool {
	switch v.kind {
	case KindSequence:
		for _, item := range v.items {
			if item.Truthy() {
				return true
			}
		}
		return false
	case KindMapping:
		for _, k := range v.keys {
			if k != "" {
				return true
			}
		}
		return false
	default:
		return v.Truthy()
	}
}

// Yessy classifies x with Of and reports whether it is yessy.
func Yessy(x any) bool {
	return Of(x).Yessy()
}

// Is reports whether x is non-null. false, 0 and "" are values.
func Is(x any) bool {
	return Of(x).kind != KindNull
}

var errorType = reflect.TypeFor[error]()

// Of classifies an arbitrary Go value.
//
// nil and nil pointers, interfaces, maps, slices, funcs and channels are
// Null. Pointers are followed. Errors, funcs and channels are Opaque.
// Structs are Mappings of their exported field names; map keys are
// formatted with fmt.Sprint.
func Of(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case []string:
		if t == nil {
			return Null()
		}
		items := make([]Value, len(t))
		for i, s := range t {
			items[i] = String(s)
		}
		return Sequence(items...)
	case map[string]string:
		if t == nil {
			return Null()
		}
		return Mapping(mapKeys(t)...)
	case map[string]any:
		if t == nil {
			return Null()
		}
		return Mapping(mapKeys(t)...)
	}
	return of(reflect.ValueOf(x))
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func of(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Null()
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return Null()
		}
	}
	if rv.Type().Implements(errorType) {
		return Opaque()
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return of(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = of(rv.Index(i))
		}
		return Sequence(items...)
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, fmt.Sprint(iter.Key().Interface()))
		}
		return Mapping(keys...)
	case reflect.Struct:
		var keys []string
		for _, f := range reflect.VisibleFields(rv.Type()) {
			if f.IsExported() && !f.Anonymous {
				keys = append(keys, f.Name)
			}
		}
		return Mapping(keys...)
	default:
		return Opaque()
	}
}
