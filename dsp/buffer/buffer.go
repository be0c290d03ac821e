package buffer

import (
	"github.com/cwbudde/algo-vecgen/dsp/core"
	"github.com/cwbudde/algo-vecgen/dsp/generate"
)

// Buffer wraps a sample slice with reuse-friendly semantics.
// Generation functions accept raw slices; use Samples() to bridge.
type Buffer[F core.Float] struct {
	samples []F
}

// New returns a zero-filled Buffer of the given length.
func New[F core.Float](length int) *Buffer[F] {
	if length < 0 {
		length = 0
	}
	return &Buffer[F]{samples: make([]F, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice[F core.Float](s []F) *Buffer[F] {
	return &Buffer[F]{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer[F]) Samples() []F {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[F]) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[F]) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *Buffer[F]) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]F, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[F]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]F, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		generate.Clear(b.samples[oldLen:n])
	}
}

// Fill sets all samples to value.
func (b *Buffer[F]) Fill(value F) {
	generate.Fill(b.samples, value)
}

// Zero sets all samples to 0.
func (b *Buffer[F]) Zero() {
	generate.Clear(b.samples)
}

// ZeroRange sets samples in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *Buffer[F]) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	if start >= end {
		return
	}
	generate.Clear(b.samples[start:end])
}

// Ramp fills the buffer with a linear ramp starting at initial and
// stepping by increment per sample.
func (b *Buffer[F]) Ramp(initial, increment F) {
	generate.Ramp(b.samples, initial, increment)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer[F]) Copy() *Buffer[F] {
	s := make([]F, len(b.samples))
	copy(s, b.samples)
	return &Buffer[F]{samples: s}
}
