package vmath

import "math"

// EaseInOut is the smoothstep curve t²(3−2t).
// Input is expected in [0,1]; derivative is zero at both ends.
func EaseInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}

// ElasticLerp interpolates start→end with a damped-oscillation curve:
// start + (end−start)·(1 − e^(−5p)·cos(10p))
// The result overshoots the end value and settles, giving movement an
// "arrival with slight correction" feel. NOT clamped: callers pass
// progress in [0,1] and must accept brief excursions outside
// [start,end] near small progress.
func ElasticLerp(start, end, progress float64) float64 {
	return start + (end-start)*(1-math.Exp(-5*progress)*math.Cos(10*progress))
}

// Lerp is plain linear interpolation, unclamped.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// Clamp01 saturates t into [0,1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Clamp saturates v into [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt saturates v into [lo,hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
