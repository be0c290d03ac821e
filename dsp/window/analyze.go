package window

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vecgen/dsp/core"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// oversample is the zero-padding factor for the analysis spectrum.
// 64x padding puts 64 spectrum samples in every bin of the window's own
// resolution, enough to locate nulls and sidelobe peaks directly on the
// interpolated grid.
const oversample = 64

// Analyze computes spectral properties of the given window coefficients
// from a zero-padded FFT of the coefficient sequence.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Analysis{}, errZeroCoherentGain
	}

	power, err := powerSpectrum(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	// DC reference: |FFT(0)|^2
	dcRef := power[0]
	if dcRef == 0 {
		return Analysis{}, errZeroCoherentGain
	}

	fftSize := (len(power) - 1) * 2
	binsPerIndex := float64(n) / float64(fftSize)

	// Scallop loss: response at a half-bin offset.
	scallopIdx := int(core.Clamp(math.Round(0.5/binsPerIndex), 0, float64(len(power)-1)))
	scallopLoss := 10 * mathLog10(power[scallopIdx]/dcRef)

	firstMin := searchFirstMinimum(power, dcRef, binsPerIndex)

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		Bandwidth3dB:      searchBandwidth(power, dcRef, binsPerIndex),
		HighestSidelobedB: searchHighestSidelobe(power, dcRef, firstMin, binsPerIndex),
		FirstMinimumBins:  firstMin,
		ScallopLossdB:     scallopLoss,
	}, nil
}

// powerSpectrum returns |FFT(coeffs)|^2 for bins 0..fftSize/2 of the
// coefficient sequence zero-padded to oversample times its length.
func powerSpectrum(coeffs []float64) ([]float64, error) {
	fftSize := nextPowerOf2(oversample * len(coeffs))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("window: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range coeffs {
		in[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("window: forward FFT failed: %w", err)
	}

	// Real input: only the first half of the spectrum is distinct.
	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	return power, nil
}

// searchBandwidth finds the 3dB (half-power) main lobe width in bins by
// locating the half-power crossing on the oversampled grid with linear
// interpolation between adjacent samples.
func searchBandwidth(power []float64, dcRef, binsPerIndex float64) float64 {
	half := dcRef / 2

	for i := 1; i < len(power); i++ {
		if power[i] < half {
			prev := power[i-1]
			frac := core.Clamp((prev-half)/(prev-power[i]), 0, 1)
			// Bandwidth is two-sided: from -f to +f.
			return 2 * (float64(i-1) + frac) * binsPerIndex
		}
	}

	return 2 * float64(len(power)-1) * binsPerIndex
}

// searchFirstMinimum finds the first spectral null position in bins by
// scanning from DC outward for the first turn-around. The response must
// first descend below 10% of DC, which avoids false positives on main
// lobe ripple.
func searchFirstMinimum(power []float64, dcRef, binsPerIndex float64) float64 {
	threshold := dcRef * 0.1

	prev := dcRef
	for i := 1; i < len(power); i++ {
		v := power[i]
		if prev < threshold && v > prev {
			// We passed a local minimum at the previous sample.
			return float64(i-1) * binsPerIndex
		}
		prev = v
	}

	return float64(len(power)-1) * binsPerIndex
}

// searchHighestSidelobe finds the peak sidelobe level in dB relative to DC,
// scanning from the first null to Nyquist.
func searchHighestSidelobe(power []float64, dcRef, firstMinBins, binsPerIndex float64) float64 {
	start := int(firstMinBins/binsPerIndex) + 1

	peak := 0.0
	for i := start; i < len(power); i++ {
		if power[i] > peak {
			peak = power[i]
		}
	}

	if peak <= 0 || dcRef <= 0 {
		return math.Inf(-1)
	}

	return 10 * mathLog10(peak/dcRef)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
