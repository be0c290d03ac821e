package veckern

import "github.com/cwbudde/algo-vecgen/dsp/core"

// Ramp writes an arithmetic sequence: dst[i] = initial + i*increment.
// The closed form keeps each element independent of its predecessors, so
// a single call accumulates no rounding from repeated addition.
func Ramp[F core.Float](dst []F, initial, increment F) {
	for i := range dst {
		dst[i] = initial + F(i)*increment
	}
}

// RampBetween writes len(dst) evenly spaced values from lower to upper
// inclusive. For a single element only lower is written.
func RampBetween[F core.Float](dst []F, lower, upper F) {
	n := len(dst)
	if n == 0 {
		return
	}
	if n == 1 {
		dst[0] = lower
		return
	}

	step := (upper - lower) / F(n-1)
	for i := 0; i < n-1; i++ {
		dst[i] = lower + F(i)*step
	}
	// The last element is pinned to upper; lower + (n-1)*step can land a
	// rounding unit away from the requested bound.
	dst[n-1] = upper
}

// RampMul multiplies src by a ramp: dst[i] = (initial + i*increment) * src[i].
// Returns the counter advanced by len(dst) increments.
//
// The counter advances by running addition, one increment per sample, so
// consecutive calls on contiguous blocks reproduce exactly the values a
// single call over the concatenated signal would produce.
// Slices must have equal length. Panics if lengths differ.
func RampMul[F core.Float](dst, src []F, initial, increment F) F {
	if len(dst) != len(src) {
		panic("veckern: slice length mismatch")
	}

	v := initial
	for i := range dst {
		dst[i] = v * src[i]
		v += increment
	}
	return v
}

// RampMulStereo applies one shared ramp counter to two channels:
// dst0[i] = ramp(i) * src0[i], dst1[i] = ramp(i) * src1[i].
// Returns the counter advanced by len(dst0) increments, exactly as RampMul.
// All four slices must have equal length. Panics if lengths differ.
func RampMulStereo[F core.Float](dst0, dst1, src0, src1 []F, initial, increment F) F {
	n := len(dst0)
	if len(dst1) != n || len(src0) != n || len(src1) != n {
		panic("veckern: slice length mismatch")
	}

	v := initial
	for i := 0; i < n; i++ {
		dst0[i] = v * src0[i]
		dst1[i] = v * src1[i]
		v += increment
	}
	return v
}
