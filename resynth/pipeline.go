package resynth

import (
	"fmt"

	"github.com/RyanBlaney/sonido-resynth/algorithms/common"
	"github.com/RyanBlaney/sonido-resynth/algorithms/peaks"
	"github.com/RyanBlaney/sonido-resynth/algorithms/spectral"
	"github.com/RyanBlaney/sonido-resynth/algorithms/synthesis"
	"github.com/RyanBlaney/sonido-resynth/logging"
)

// Pipeline sequences spectral transform, peak detection, and additive
// resynthesis for signals sharing one sample rate. It holds no mutable
// state between calls: every stage consumes immutable inputs and produces
// new values, so one pipeline can process independent signals concurrently.
type Pipeline struct {
	config      *Config
	transformer *spectral.Transformer
	locator     *peaks.Locator
	synthesizer *synthesis.Synthesizer
	logger      logging.Logger
}

// NewPipeline creates a pipeline from the given configuration.
// A nil config uses DefaultConfig.
func NewPipeline(config *Config) (*Pipeline, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Pipeline{
		config:      config,
		transformer: spectral.NewTransformer(config.SampleRate, config.Window),
		locator:     peaks.NewLocator(config.Width, config.Lookaround),
		synthesizer: synthesis.NewSynthesizer(config.SampleRate),
		logger: logging.WithFields(logging.Fields{
			"component":   "resynth_pipeline",
			"sample_rate": config.SampleRate,
		}),
	}, nil
}

// Config returns the pipeline configuration
func (p *Pipeline) Config() *Config {
	return p.config
}

// Analyze computes the magnitude spectrum of signal and detects its dominant
// peaks, returning both so intermediate results can be inspected or the same
// tuned parameters replayed across different inputs.
func (p *Pipeline) Analyze(signal []float64) (*spectral.Spectrum, []peaks.Peak, error) {
	spectrum, err := p.transformer.Transform(signal)
	if err != nil {
		return nil, nil, fmt.Errorf("transform failed: %w", err)
	}

	detected, err := p.locator.Locate(spectrum.Frequencies, spectrum.Amplitudes)
	if err != nil {
		return nil, nil, fmt.Errorf("peak detection failed: %w", err)
	}

	return spectrum, detected, nil
}

// FindPeaks runs peak detection alone on an index-aligned
// frequency/amplitude pair, using the pipeline's tuned width and lookaround.
func (p *Pipeline) FindPeaks(frequencies, amplitudes []float64) ([]peaks.Peak, error) {
	return p.locator.Locate(frequencies, amplitudes)
}

// Synthesize renders the configured duration of the linear superposition of
// the given peaks. An empty peak set yields a full-length silent signal.
func (p *Pipeline) Synthesize(detected []peaks.Peak) ([]float64, error) {
	return p.synthesizer.Sum(toComponents(detected), p.config.Duration)
}

// Reconstruct runs the full pipeline on signal: transform, peak detection,
// additive resynthesis. The synthesis duration comes from the configuration
// and is independent of the input signal's length.
func (p *Pipeline) Reconstruct(signal []float64) ([]float64, error) {
	logger := p.logger.WithFields(logging.Fields{
		"function":      "Reconstruct",
		"signal_length": len(signal),
	})

	_, detected, err := p.Analyze(signal)
	if err != nil {
		return nil, err
	}

	if len(detected) == 0 {
		logger.Warn("No spectral peaks detected; reconstruction is silence")
	}

	out, err := p.synthesizer.Sum(toComponents(detected), p.config.Duration)
	if err != nil {
		return nil, fmt.Errorf("synthesis failed: %w", err)
	}

	logger.Debug("Reconstruction completed", logging.Fields{
		"peaks":      len(detected),
		"samples":    len(out),
		"output_rms": common.RMS(out),
	})

	return out, nil
}

func toComponents(detected []peaks.Peak) []synthesis.Component {
	components := make([]synthesis.Component, 0, len(detected))
	for _, pk := range detected {
		components = append(components, synthesis.Component{
			Frequency: pk.Frequency,
			Amplitude: pk.Amplitude,
		})
	}
	return components
}
