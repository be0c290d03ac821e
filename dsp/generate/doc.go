// Package generate provides vector fill, clear and ramp generation for
// float32 and float64 sample buffers.
//
// Every operation is a one-shot, in-place transformation of caller-owned
// buffers: nothing is retained beyond the call, no allocation happens, and
// run time is O(N) in the buffer length. A zero-length buffer is a valid
// no-op for every operation. Calls on disjoint buffers may run concurrently
// without coordination; calls sharing a destination must be serialized by
// the caller.
//
// The only cross-call state is the ramp counter threaded explicitly through
// RampMul and RampMulStereo:
//
//	next := generate.RampMul(out[:512], in[:512], gain, step)
//	next = generate.RampMul(out[512:], in[512:], next, step)
//
// The counter advances by running addition, so processing a signal block by
// block is bit-identical to one call over the whole signal.
//
// Length preconditions are contracts, not runtime conditions: operations
// that involve multiple buffers panic when the lengths differ, since a
// partial result would silently compute nonsense.
package generate
