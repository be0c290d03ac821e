package generate

import (
	"strconv"
	"testing"
)

func BenchmarkFill(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run("float64/"+itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float64, n)
			for i := 0; i < b.N; i++ {
				Fill(buf, 0.5)
			}
		})
		b.Run("float32/"+itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float32, n)
			for i := 0; i < b.N; i++ {
				Fill(buf, float32(0.5))
			}
		})
	}
}

func BenchmarkClear(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float64, n)
			for i := 0; i < b.N; i++ {
				Clear(buf)
			}
		})
	}
}

func BenchmarkRamp(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			buf := make([]float64, n)
			for i := 0; i < b.N; i++ {
				Ramp(buf, 0, 0.001)
			}
		})
	}
}

func BenchmarkRampMul(b *testing.B) {
	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			src := make([]float64, n)
			dst := make([]float64, n)
			Fill(src, 1)
			v := 0.0
			for i := 0; i < b.N; i++ {
				v = RampMul(dst, src, v, 1e-9)
			}
		})
	}
}

func BenchmarkRampMulStereo(b *testing.B) {
	sizes := []int{256, 1024, 4096}
	for _, n := range sizes {
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			src0 := make([]float64, n)
			src1 := make([]float64, n)
			dst0 := make([]float64, n)
			dst1 := make([]float64, n)
			Fill(src0, 1)
			Fill(src1, 1)
			v := 0.0
			for i := 0; i < b.N; i++ {
				v = RampMulStereo(dst0, dst1, src0, src1, v, 1e-9)
			}
		})
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
