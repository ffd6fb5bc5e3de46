package numutil

import "cmp"

// Clamp restricts value to the closed range [low, high], computed as
// min(max(value, low), high).
//
// Callers are expected to pass low <= high. When they do not, the composition is
// applied as is and the result is high.
func Clamp[T cmp.Ordered](value, low, high T) T {
	return min(max(value, low), high)
}
