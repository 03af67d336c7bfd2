package utils

// Clamp 将 v 限制在 [min, max] 范围内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp01 将 v 限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// WrapAround moves a coordinate that left [min-margin, max+margin] back in
// from the opposite edge. It returns the new value and whether a wrap happened.
//
// Particles carry a margin (usually their size) so they vanish fully before
// reappearing on the other side.
func WrapAround(v, min, max, margin float64) (float64, bool) {
	lo := min - margin
	hi := max + margin
	if v < lo {
		return hi - (lo - v), true
	}
	if v > hi {
		return lo + (v - hi), true
	}
	return v, false
}
