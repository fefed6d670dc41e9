package resynth

import (
	"fmt"

	"github.com/RyanBlaney/sonido-resynth/algorithms/windowing"
)

// Config holds the parameters for one analysis/resynthesis session.
//
// SampleRate is shared by every signal the pipeline touches; the transform
// and the synthesizer must agree on it. Width and Lookaround tune peak
// detection and are chosen empirically per input - different instruments
// need different widths - rather than inferred from signal statistics, so
// runs stay auditable and reproducible.
type Config struct {
	SampleRate float64        `json:"sample_rate"` // Hz, constant for the session
	Width      int            `json:"width"`       // Expected peak width in bins
	Lookaround int            `json:"lookaround"`  // Refinement half-window radius in bins
	Duration   float64        `json:"duration"`    // Seconds of output to synthesize
	Window     windowing.Type `json:"window"`      // Analysis window before the FFT
}

// DefaultConfig returns a starting-point configuration. Width and Lookaround
// are reasonable for sustained instrument tones at a few seconds of input,
// but callers are expected to tune them per signal.
func DefaultConfig() *Config {
	return &Config{
		SampleRate: 8000,
		Width:      60,
		Lookaround: 10,
		Duration:   1.0,
		Window:     windowing.TypeRectangular,
	}
}

// Validate reports the first invalid parameter, if any
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %v", c.SampleRate)
	}

	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}

	if c.Lookaround <= 0 {
		return fmt.Errorf("lookaround must be positive, got %d", c.Lookaround)
	}

	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	}

	return nil
}
