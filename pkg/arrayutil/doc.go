// Package arrayutil provides generic helpers for ordered slices: first-occurrence
// deduplication, deep flattening of nested sequences and predicate-based
// lookups.
//
// None of the helpers mutate their input. Lookups never panic on a miss; Find
// reports absence through its boolean result and FindIndex returns -1.
//
// # Usage
//
//	import "github.com/dmitrymomot/frontkit/pkg/arrayutil"
//
//	ids := arrayutil.Deduplicate([]int{3, 1, 3, 2, 1}) // [3 1 2]
//
//	flat := arrayutil.Flat([]any{1, 2, []any{3, []int{4, 5}}}) // [1 2 3 4 5]
//
//	v, ok := arrayutil.Find([]int{1, 2, 3}, func(n int) bool { return n > 1 })
//	// v == 2, ok == true
//
//	i := arrayutil.FindIndex([]int{1, 2, 3}, func(n int) bool { return n > 5 })
//	// i == -1
package arrayutil
