package arrayutil

import "reflect"

// Deduplicate returns a new slice holding every distinct element of s exactly
// once, in order of first occurrence. Pointers compare by identity, everything
// else by value.
func Deduplicate[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	result := make([]T, 0, len(s))

	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}

	return result
}

// Flat expands nested slices and arrays found at any depth into a single slice,
// depth-first and left to right. Elements that are not sequences are copied
// through unchanged. Strings are treated as scalars.
//
// Input is assumed to be acyclic.
func Flat(s []any) []any {
	result := make([]any, 0, len(s))
	for _, item := range s {
		result = appendFlat(result, item)
	}
	return result
}

func appendFlat(acc []any, item any) []any {
	if nested, ok := item.([]any); ok {
		for _, v := range nested {
			acc = appendFlat(acc, v)
		}
		return acc
	}

	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			acc = appendFlat(acc, rv.Index(i).Interface())
		}
		return acc
	default:
		return append(acc, item)
	}
}

// Find returns the first element of s for which pred holds. The boolean result
// is false, and the element is T's zero value, when nothing matches.
func Find[T any](s []T, pred func(T) bool) (T, bool) {
	if i := FindIndex(s, pred); i >= 0 {
		return s[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element of s for which pred holds,
// or -1 if none does. A nil predicate matches nothing.
func FindIndex[T any](s []T, pred func(T) bool) int {
	if pred == nil {
		return -1
	}
	for i, item := range s {
		if pred(item) {
			return i
		}
	}
	return -1
}
