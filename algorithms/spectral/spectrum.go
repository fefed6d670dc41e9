package spectral

import (
	"fmt"
	"math/cmplx"

	"github.com/RyanBlaney/sonido-resynth/algorithms/common"
	"github.com/RyanBlaney/sonido-resynth/algorithms/windowing"
	"github.com/RyanBlaney/sonido-resynth/logging"
)

// Spectrum holds the single-sided magnitude spectrum of a real-valued signal.
// Frequencies and Amplitudes are index-aligned and both have length N/2,
// where N is the analyzed signal's sample count.
type Spectrum struct {
	Frequencies []float64 `json:"frequencies"` // Bin center frequencies in Hz, ascending from 0
	Amplitudes  []float64 `json:"amplitudes"`  // Magnitude per bin, phase discarded
	SampleRate  float64   `json:"sample_rate"`
	FFTSize     int       `json:"fft_size"` // Original signal length N
}

// Len returns the number of frequency bins
func (s *Spectrum) Len() int {
	return len(s.Amplitudes)
}

// Resolution returns the frequency resolution in Hz per bin
func (s *Spectrum) Resolution() float64 {
	if s.FFTSize == 0 {
		return 0
	}
	return s.SampleRate / float64(s.FFTSize)
}

// PeakBin returns the bin index with the largest magnitude.
// Ties resolve to the lowest index. Returns -1 for an empty spectrum.
func (s *Spectrum) PeakBin() int {
	return common.ArgMax(s.Amplitudes)
}

// Transformer computes single-sided magnitude spectra of real-valued signals
type Transformer struct {
	sampleRate float64
	window     windowing.Type
	fft        *FFT
	logger     logging.Logger
}

// NewTransformer creates a spectral transformer for the given sample rate.
// The window type selects an analysis window applied before the FFT;
// TypeRectangular leaves the signal untouched.
func NewTransformer(sampleRate float64, window windowing.Type) *Transformer {
	return &Transformer{
		sampleRate: sampleRate,
		window:     window,
		fft:        NewFFT(),
		logger: logging.WithFields(logging.Fields{
			"component":   "spectral_transformer",
			"sample_rate": sampleRate,
		}),
	}
}

// Transform computes the magnitude spectrum of signal.
//
// The full complex spectrum of length N is computed, the magnitude is taken,
// and the result is restricted to the first N/2 bins: the input is assumed
// real-valued, so the spectrum is conjugate-symmetric and the second half is
// redundant. Bin i corresponds to frequency i * sampleRate / N.
func (t *Transformer) Transform(signal []float64) (*Spectrum, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}

	if t.sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", t.sampleRate)
	}

	logger := t.logger.WithFields(logging.Fields{
		"function":      "Transform",
		"signal_length": len(signal),
		"window":        t.window.String(),
	})

	logger.Debug("Computing magnitude spectrum")

	input := signal
	if t.window != windowing.TypeRectangular {
		input = windowing.New(t.window, len(signal)).Apply(signal)
	}

	fftResult := t.fft.Compute(input)

	n := len(signal)
	freqBins := n / 2

	frequencies := make([]float64, freqBins)
	amplitudes := make([]float64, freqBins)

	for i := 0; i < freqBins; i++ {
		frequencies[i] = float64(i) * t.sampleRate / float64(n)
		amplitudes[i] = cmplx.Abs(fftResult[i])
	}

	result := &Spectrum{
		Frequencies: frequencies,
		Amplitudes:  amplitudes,
		SampleRate:  t.sampleRate,
		FFTSize:     n,
	}

	logger.Debug("Magnitude spectrum computed", logging.Fields{
		"freq_bins":       freqBins,
		"freq_resolution": result.Resolution(),
	})

	return result, nil
}

// Transform is a one-shot helper that computes the magnitude spectrum of
// signal at the given sample rate without an analysis window.
func Transform(signal []float64, sampleRate float64) (*Spectrum, error) {
	return NewTransformer(sampleRate, windowing.TypeRectangular).Transform(signal)
}
