// Package cpu provides CPU feature detection for generator kernel selection.
//
// Detection is performed lazily on the first query and the results are
// cached using sync.Once for thread-safety. Tests can override detection
// with SetForcedFeatures.
package cpu

import (
	"sync"
)

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX2 bool // Advanced Vector Extensions 2 (256-bit vectors)

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// ForceGeneric disables all width-tuned kernels (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g., "amd64", "arm64").
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection runs once on the first call and is cached. Safe for concurrent
// use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	f := DetectFeatures()
	return f.HasAVX2 && !f.ForceGeneric
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	f := DetectFeatures()
	return f.HasSSE2 && !f.ForceGeneric
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	f := DetectFeatures()
	return f.HasNEON && !f.ForceGeneric
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
