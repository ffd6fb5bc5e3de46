package typeutil

import (
	"math"
	"reflect"
	"strconv"
	"time"
)

// IsDate reports a time.Time or a non-nil *time.Time.
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

// IsFunction reports a non-nil function value of any signature.
func IsFunction(v any) bool {
	return kindOf(v) == reflect.Func && !isNilValue(v)
}

func IsString(v any) bool { return kindOf(v) == reflect.String }

func IsSymbol(v any) bool {
	s, ok := v.(*Symbol)
	return ok && s != nil
}

func IsBool(v any) bool { return kindOf(v) == reflect.Bool }

// IsNumber reports any integer or floating point kind. NaN is a number.
func IsNumber(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsObject reports a non-null structured value: a map, struct, slice, array
// or pointer. Symbols are not objects.
func IsObject(v any) bool {
	if v == nil || isNilValue(v) || IsSymbol(v) {
		return false
	}
	switch kindOf(v) {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Pointer:
		return true
	}
	return false
}

// IsArray reports a slice or an array.
func IsArray(v any) bool {
	k := kindOf(v)
	return k == reflect.Slice || k == reflect.Array
}

// IsMap reports a map that is not a set.
func IsMap(v any) bool { return ToRawType(v) == TypeMap }

// IsSet reports a map whose element type is struct{}.
func IsSet(v any) bool { return ToRawType(v) == TypeSet }

// element is the structural shape of a DOM element node.
type element interface {
	TagName() string
	NodeType() int
}

const elementNode = 1

// IsHTMLElement reports a value exposing TagName and NodeType methods whose
// node type is that of an element.
func IsHTMLElement(v any) bool {
	el, ok := v.(element)
	if !ok || isNilValue(v) {
		return false
	}
	return el.NodeType() == elementNode
}

// IsPromise reports a thenable: a value with callable Then and Catch members
// (methods or exported func fields), or a string-keyed map holding callable
// "then" and "catch" entries.
func IsPromise(v any) bool {
	if !IsObject(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return rv.Type().Key().Kind() == reflect.String &&
			callableEntry(rv, "then") && callableEntry(rv, "catch")
	}
	return callableMember(rv, "Then") && callableMember(rv, "Catch")
}

func callableEntry(m reflect.Value, key string) bool {
	e := m.MapIndex(reflect.ValueOf(key).Convert(m.Type().Key()))
	return e.IsValid() && e.CanInterface() && IsFunction(e.Interface())
}

func callableMember(rv reflect.Value, name string) bool {
	if rv.MethodByName(name).IsValid() {
		return true
	}
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return false
	}
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() || sf.Type.Kind() != reflect.Func {
		return false
	}
	f, err := rv.FieldByIndexErr(sf.Index)
	return err == nil && !f.IsNil()
}

// IsNull reports a typed nil pointer, func or chan.
func IsNull(v any) bool {
	return v != nil && isNilValue(v)
}

// IsDef reports whether v is undefined, that is the untyped nil interface.
// Despite its name it returns true for the absent value.
func IsDef(v any) bool {
	return v == nil
}

// IsEmpty reports whether v is empty. A value is empty when any of the
// following holds:
//
//   - it is falsy but neither a zero number nor the empty string: undefined,
//     null, false or NaN
//   - it is an array of length zero
//   - it is an object with no own keys: an empty map, a struct with no
//     exported fields, or a pointer to one of these
//
// Zero and "" are not empty.
func IsEmpty(v any) bool {
	return isFalsyNonZero(v) ||
		(IsArray(v) && reflect.ValueOf(v).Len() == 0) ||
		(IsObject(v) && ownKeyCount(reflect.ValueOf(v)) == 0)
}

func isFalsyNonZero(v any) bool {
	if v == nil || isNilValue(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

func ownKeyCount(rv reflect.Value) int {
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len()
	case reflect.Struct:
		n := 0
		for i := range rv.NumField() {
			if rv.Type().Field(i).IsExported() {
				n++
			}
		}
		return n
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return ownKeyCount(rv.Elem())
	default:
		return 0
	}
}

// HasOwn reports whether key is an own property of v without looking through
// embedded structs: a key of a string-keyed map, a field declared directly on
// a struct (promoted fields do not count), or an index of a slice or array.
func HasOwn(v any, key string) bool {
	if v == nil || isNilValue(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return false
		}
		return rv.MapIndex(reflect.ValueOf(key).Convert(kt)).IsValid()
	case reflect.Struct:
		for i := range rv.NumField() {
			if rv.Type().Field(i).Name == key {
				return true
			}
		}
		return false
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		return err == nil && i >= 0 && i < rv.Len() && strconv.Itoa(i) == key
	default:
		return false
	}
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}
