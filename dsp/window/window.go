package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vecgen/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	// TypeHannNormalized is the unity-peak Hann form 0.5 - 0.5*cos(2πx).
	TypeHannNormalized Type = iota

	// TypeHannDenormalized is the same cosine shape without the 0.5
	// normalization scaling, 1 - cos(2πx). It equals the normalized form
	// times 2 at every sample.
	TypeHannDenormalized

	// TypeHamming is 0.54 - 0.46*cos(2πx).
	TypeHamming

	// TypeBlackman is the classic 3-term 0.42 - 0.5*cos(2πx) + 0.08*cos(4πx).
	TypeBlackman
)

// Metadata holds reference spectral properties of a window type,
// valid in the large-N limit.
type Metadata struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

var metadataByType = map[Type]Metadata{
	TypeHannNormalized:   {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
	TypeHannDenormalized: {Name: "Hann (denormalized)", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 1.0},
	TypeHamming:          {Name: "Hamming", ENBW: 1.3628, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeBlackman:         {Name: "Blackman", ENBW: 1.7268, HighestSidelobe: -58.1, CoherentGain: 0.42},
}

// Option configures window generation.
type Option func(*config)

type config struct {
	halfWindow bool
	periodic   bool
}

func defaultConfig() config {
	return config{}
}

// WithHalfWindow generates only the non-redundant first half of a
// symmetric window. The destination length is the half-count: a buffer of
// length H receives the first H samples of a window whose conceptual full
// length is 2H-1, so the final element is the window peak.
func WithHalfWindow() Option {
	return func(c *config) {
		c.halfWindow = true
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Into populates dst with window coefficients of the selected type.
// The buffer length determines the sample count; a zero-length buffer is
// a no-op.
func Into[F core.Float](t Type, dst []F, opts ...Option) {
	if len(dst) == 0 {
		return
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	den := denominator(len(dst), cfg)
	for i := range dst {
		dst[i] = F(evalWindow(t, samplePosition(i, den)))
	}
}

// Generate returns window coefficients of the given length.
func Generate[F core.Float](t Type, length int, opts ...Option) []F {
	if length <= 0 {
		return nil
	}

	out := make([]F, length)
	Into(t, out, opts...)

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate[float64](t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Hann returns normalized Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate[float64](TypeHannNormalized, size, opts...), validateLength(size)
}

// HannDenormalized returns denormalized Hann window coefficients.
func HannDenormalized(size int, opts ...Option) ([]float64, error) {
	return Generate[float64](TypeHannDenormalized, size, opts...), validateLength(size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int, opts ...Option) ([]float64, error) {
	return Generate[float64](TypeHamming, size, opts...), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]float64, error) {
	return Generate[float64](TypeBlackman, size, opts...), validateLength(size)
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

var (
	hannCoeffs       = []float64{0.5, -0.5}
	hannDenormCoeffs = []float64{1, -1}
	hammingCoeffs    = []float64{0.54, -0.46}
	blackmanCoeffs   = []float64{0.42, -0.5, 0.08}
)

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHannNormalized:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHannDenormalized:
		return cosineFromCoeffs(x, hannDenormCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// denominator returns the divisor mapping sample index to window position.
// For a half window the conceptual full length is 2n-1.
func denominator(n int, cfg config) float64 {
	full := n
	if cfg.halfWindow {
		full = 2*n - 1
	}

	if cfg.periodic {
		return float64(full)
	}

	return float64(full - 1)
}

func samplePosition(i int, den float64) float64 {
	if den <= 0 {
		return 0
	}

	x := float64(i) / den
	if x > 1 {
		x = 1
	}

	return x
}
