package typeutil

import (
	"reflect"
	"time"
)

// Raw type tags produced by ToRawType.
const (
	TypeUndefined   = "Undefined"
	TypeNull        = "Null"
	TypeString      = "String"
	TypeBoolean     = "Boolean"
	TypeNumber      = "Number"
	TypeFunction    = "Function"
	TypeSymbol      = "Symbol"
	TypeDate        = "Date"
	TypeArray       = "Array"
	TypeMap         = "Map"
	TypeSet         = "Set"
	TypePromise     = "Promise"
	TypeHTMLElement = "HTMLElement"
	TypeError       = "Error"
	TypeObject      = "Object"
)

var (
	timeType  = reflect.TypeFor[time.Time]()
	errorType = reflect.TypeFor[error]()
	emptyType = reflect.TypeFor[struct{}]()
)

// ToTypeString renders the internal tag of v, for example "[object Array]".
func ToTypeString(v any) string {
	return "[object " + ToRawType(v) + "]"
}

// ToRawType returns the bare type tag of v, for example "Array".
func ToRawType(v any) string {
	if v == nil {
		return TypeUndefined
	}
	if isNilValue(v) {
		return TypeNull
	}

	switch v.(type) {
	case *Symbol:
		return TypeSymbol
	case time.Time, *time.Time:
		return TypeDate
	}
	if IsHTMLElement(v) {
		return TypeHTMLElement
	}
	if IsPromise(v) {
		return TypePromise
	}

	rv := reflect.ValueOf(v)
	if rv.Type().Implements(errorType) {
		return TypeError
	}

	switch rv.Kind() {
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Func:
		return TypeFunction
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Map:
		if rv.Type().Elem() == emptyType {
			return TypeSet
		}
		return TypeMap
	default:
		return TypeObject
	}
}

// isNilValue reports a typed nil held in an interface. Nil slices and maps
// read as empty collections and do not count.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
