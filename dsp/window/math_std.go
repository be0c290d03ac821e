//go:build !fastmath

package window

import "math"

// mathLog10 computes log10(x) using the standard library.
func mathLog10(x float64) float64 {
	return math.Log10(x)
}
