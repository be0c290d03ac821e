package veckern

import (
	"github.com/cwbudde/algo-vecgen/dsp/core"
	"github.com/cwbudde/algo-vecgen/internal/cpu"
)

// Fill sets every element to a constant: dst[i] = v.
// Automatically selects the unroll width based on CPU features.
func Fill[F core.Float](dst []F, v F) {
	if cpu.HasAVX2() {
		fill8(dst, v)
		return
	}
	fill4(dst, v)
}

// Clear sets every element to zero: dst[i] = 0.
// The range-clear form is recognized by the compiler and lowered to a
// memclr, so the zero path needs no per-element store of a loaded constant.
func Clear[F core.Float](dst []F) {
	for i := range dst {
		dst[i] = 0
	}
}

// fill8 writes 8 lanes per iteration, one full AVX2 vector of float32
// (or two of float64).
func fill8[F core.Float](dst []F, v F) {
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		dst[i+0] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
		dst[i+4] = v
		dst[i+5] = v
		dst[i+6] = v
		dst[i+7] = v
	}
	for ; i < n; i++ {
		dst[i] = v
	}
}

// fill4 writes 4 lanes per iteration, sized for 128-bit SIMD (SSE2/NEON).
func fill4[F core.Float](dst []F, v F) {
	n := len(dst)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i+0] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
	}
	for ; i < n; i++ {
		dst[i] = v
	}
}
