package brokeh

import "math/rand/v2"

// Lerp linearly interpolates between min and max by t.
func Lerp(t, min, max float64) float64 {
	return min + t*(max-min)
}

// Normalize maps v from [min, max] onto [0, 1]. It is the inverse of Lerp.
// The result is undefined (Inf or NaN) when min == max.
func Normalize(v, min, max float64) float64 {
	return (v - min) / (max - min)
}

// Fill returns a slice of length n whose element i is fn(i).
// fn is never called when n <= 0.
func Fill[T any](n int, fn func(i int) T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// RandomUnit returns a uniform value in [0, 1).
func RandomUnit() float64 {
	return rand.Float64()
}

// RandomRange returns min + u*(max-min) for a uniform u in [0, 1).
// For min < max the result lies in [min, max). The bounds may be given in
// either order: when max < min the result lies in (max, min], and when they
// are equal the result is exactly min.
func RandomRange(min, max float64) float64 {
	if min == max {
		return min
	}
	return min + rand.Float64()*(max-min)
}

// RandomChoice returns a uniformly chosen element of set. It reports false
// (and the zero value) when set is empty.
func RandomChoice[T any](set []T) (T, bool) {
	if len(set) == 0 {
		var zero T
		return zero, false
	}
	return set[rand.IntN(len(set))], true
}
