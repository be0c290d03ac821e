package generate

import (
	"github.com/cwbudde/algo-vecgen/dsp/core"
	"github.com/cwbudde/algo-vecgen/internal/veckern"
)

// Fill sets every element of dst to value.
func Fill[F core.Float](dst []F, value F) {
	veckern.Fill(dst, value)
}

// Clear sets every element of dst to zero.
//
// Equivalent to Fill(dst, 0), but routed through a dedicated zero path
// that avoids broadcasting a loaded constant per element.
func Clear[F core.Float](dst []F) {
	veckern.Clear(dst)
}

// Ramp writes dst[i] = initial + i*increment.
func Ramp[F core.Float](dst []F, initial, increment F) {
	veckern.Ramp(dst, initial, increment)
}

// RampBetween writes len(dst) evenly spaced values from lower to upper,
// both bounds inclusive:
//
//	dst[i] = lower + i*(upper-lower)/(len(dst)-1)
//
// A single-element buffer receives lower.
func RampBetween[F core.Float](dst []F, lower, upper F) {
	veckern.RampBetween(dst, lower, upper)
}

// RampMul multiplies src by a ramp starting at initial:
//
//	dst[i] = (initial + i*increment) * src[i]
//
// and returns the counter advanced by len(dst) increments, for seamless
// continuation on the next contiguous block. dst and src must have equal
// length. Panics if lengths differ.
func RampMul[F core.Float](dst, src []F, initial, increment F) F {
	return veckern.RampMul(dst, src, initial, increment)
}

// RampMulStereo applies the same ramp to two channels with one shared,
// synchronized counter: both channels see the identical ramp value at each
// index. Returns the advanced counter exactly as RampMul would.
// All four slices must have equal length. Panics if lengths differ.
func RampMulStereo[F core.Float](dst0, dst1, src0, src1 []F, initial, increment F) F {
	return veckern.RampMulStereo(dst0, dst1, src0, src1, initial, increment)
}
