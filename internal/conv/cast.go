package conv

import "math"

// ClampToInt32 converts int to int32, saturating at the int32 bounds.
//
// Used for rounding places, where an out-of-range value means "round away
// everything" or "keep everything" and saturation preserves that meaning.
func ClampToInt32(v int) int32 {
	if v < math.MinInt32 {
		return math.MinInt32
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
