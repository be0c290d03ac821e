package buffer

import (
	"sync"

	"github.com/cwbudde/algo-vecgen/dsp/core"
)

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure
// in real-time processing loops.
type Pool[F core.Float] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[F core.Float]() *Pool[F] {
	return &Pool[F]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[F]{}
			},
		},
	}
}

// Get returns a Buffer with the requested length. The buffer is zeroed.
// Callers must return it via Put when done.
func (p *Pool[F]) Get(length int) *Buffer[F] {
	b := p.pool.Get().(*Buffer[F])
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[F]) Put(b *Buffer[F]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
