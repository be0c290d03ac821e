// Package veckern contains the fill, clear and ramp kernels behind the
// public dsp/generate package.
//
// Kernels are pure Go and generic over float32/float64. The fill paths use
// width-tuned unrolling selected from detected CPU features (8 lanes on
// AVX2-class cores, 4 lanes otherwise) so the compiler's auto-vectorizer
// has full vectors to work with. Ramp kernels stay strictly sequential:
// the running counter must accumulate one increment per sample so that
// splitting a signal into blocks is bit-identical to one call over the
// concatenation.
//
// All kernels are allocation-free and hold no state; concurrent calls on
// disjoint buffers need no coordination.
package veckern
