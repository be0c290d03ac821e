package buffer

import (
	"sync"
	"testing"
)

func TestPoolGetZeroed(t *testing.T) {
	p := NewPool[float64]()

	b := p.Get(4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	b.Fill(9)
	p.Put(b)

	// A reused buffer must come back zeroed regardless of prior contents.
	c := p.Get(4)
	for i, v := range c.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0 after pool reuse", i, v)
		}
	}
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool[float64]()
	p.Put(nil) // must not panic
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool[float32]()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				b := p.Get(256)
				b.Ramp(0, 1)
				p.Put(b)
			}
		}()
	}
	wg.Wait()
}
