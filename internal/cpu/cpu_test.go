package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestDetectFeaturesCached(t *testing.T) {
	ResetDetection()
	a := DetectFeatures()
	b := DetectFeatures()
	if a != b {
		t.Fatalf("detection not stable: %+v vs %+v", a, b)
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "forced"})
	if !HasAVX2() {
		t.Fatal("forced AVX2 not reported")
	}

	SetForcedFeatures(Features{HasAVX2: true, ForceGeneric: true})
	if HasAVX2() {
		t.Fatal("ForceGeneric should mask AVX2")
	}
	if HasNEON() || HasSSE2() {
		t.Fatal("ForceGeneric should mask all SIMD flags")
	}
}

func TestResetDetection(t *testing.T) {
	SetForcedFeatures(Features{Architecture: "forced"})
	ResetDetection()
	if DetectFeatures().Architecture == "forced" {
		t.Fatal("ResetDetection should clear forced features")
	}
}
