// Package typeutil classifies dynamically typed values held in an any.
//
// The predicates are total: they accept any value, including nil, and never
// panic. Classification follows a script-like value model mapped onto Go:
//
//   - undefined is the untyped nil interface (no value at all)
//   - null is a typed nil pointer, func or chan
//   - arrays are slices and arrays; a nil slice is an empty array
//   - maps are Go maps, a nil map is an empty map; maps whose element type
//     is struct{} are sets
//   - dates are time.Time values
//   - symbols are *Symbol values created by NewSymbol
//
// Naming note: IsDef reports whether a value is undefined. The name is kept for
// parity with existing call sites; read it as "is undefined".
//
// IsPromise and IsHTMLElement are structural checks. A value qualifies by the
// members it exposes, not by its declared type.
//
// # Usage
//
//	typeutil.IsEmpty(0)                // false
//	typeutil.IsEmpty("")               // false
//	typeutil.IsEmpty(nil)              // true
//	typeutil.IsEmpty([]int{})          // true
//	typeutil.IsEmpty(map[string]any{}) // true
//
//	typeutil.ToTypeString([]int{1}) // "[object Array]"
//	typeutil.ToRawType([]int{1})    // "Array"
package typeutil
