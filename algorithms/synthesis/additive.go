package synthesis

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-resynth/logging"
)

// Synthesizer builds time-domain signals as sums of pure sine tones
type Synthesizer struct {
	sampleRate float64
	logger     logging.Logger
}

// NewSynthesizer creates an additive synthesizer for the given sample rate.
// The rate must match the rate used on the analysis side or the component
// frequencies are meaningless.
func NewSynthesizer(sampleRate float64) *Synthesizer {
	return &Synthesizer{
		sampleRate: sampleRate,
		logger: logging.WithFields(logging.Fields{
			"component":   "synthesizer",
			"sample_rate": sampleRate,
		}),
	}
}

// Sum renders duration seconds of the linear superposition of the given
// components: a * sin(2*pi*f*t) sampled at t = 0, 1/rate, 2/rate, ...
//
// The output has exactly round(duration*sampleRate) samples. Components
// accumulate into a single buffer, so peak memory stays proportional to the
// output length regardless of component count. No normalization or clipping
// is applied; samples may exceed [-1, 1]. An empty component list yields a
// full-length all-zero signal.
func (s *Synthesizer) Sum(components []Component, duration float64) ([]float64, error) {
	if s.sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", s.sampleRate)
	}

	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", duration)
	}

	numSamples := int(math.Round(duration * s.sampleRate))
	out := make([]float64, numSamples)

	for _, c := range components {
		omega := 2.0 * math.Pi * c.Frequency / s.sampleRate
		for i := range out {
			out[i] += c.Amplitude * math.Sin(omega*float64(i))
		}
	}

	s.logger.Debug("Synthesis completed", logging.Fields{
		"function":   "Sum",
		"components": len(components),
		"samples":    numSamples,
	})

	return out, nil
}
