package peaks

import (
	"fmt"
	"math"
	"sort"

	"github.com/RyanBlaney/sonido-resynth/algorithms/common"
	"github.com/RyanBlaney/sonido-resynth/logging"
)

// Peak represents one detected spectral component
type Peak struct {
	Frequency float64 `json:"frequency"` // Peak frequency in Hz
	Amplitude float64 `json:"amplitude"` // Peak magnitude
	BinIndex  int     `json:"bin_index"` // Bin index in the source spectrum
}

const (
	defaultMinSNR    = 1.0
	defaultNoisePerc = 10.0
)

// Locator detects dominant spectral peaks in a magnitude spectrum.
//
// Detection runs in two stages. A wavelet scan over a ladder of Ricker
// scales up to the configured width gives noise-tolerant coarse candidates:
// chains of wavelet maxima that persist across scales. The coarse stage
// optimizes for scale and shape, not exact location, so each candidate is
// then refined to the strongest bin inside a lookaround window. Refinement
// tracks the winning bin index directly, so a peak's frequency is always
// read from the same bin as its amplitude; when a window holds two bins of
// identical magnitude, the lower bin (lower frequency) wins.
type Locator struct {
	width      int
	lookaround int
	minSNR     float64
	noisePerc  float64
	logger     logging.Logger
}

// NewLocator creates a peak locator. width is the expected peak width in
// bins; lookaround is the refinement half-window radius in bins. Both are
// tuned per signal by the caller.
func NewLocator(width, lookaround int) *Locator {
	return &Locator{
		width:      width,
		lookaround: lookaround,
		minSNR:     defaultMinSNR,
		noisePerc:  defaultNoisePerc,
		logger: logging.WithFields(logging.Fields{
			"component":  "peak_locator",
			"width":      width,
			"lookaround": lookaround,
		}),
	}
}

// Locate returns the spectral peaks of an index-aligned frequency/amplitude
// pair of sequences. A result with no peaks is not an error; silent or
// featureless input simply yields an empty slice. Peaks are emitted in
// ascending bin order, but callers must not rely on any particular ordering.
func (l *Locator) Locate(frequencies, amplitudes []float64) ([]Peak, error) {
	if len(frequencies) != len(amplitudes) {
		return nil, fmt.Errorf("frequency/amplitude length mismatch: %d vs %d",
			len(frequencies), len(amplitudes))
	}

	if l.width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %d", l.width)
	}

	if l.lookaround <= 0 {
		return nil, fmt.Errorf("lookaround must be positive, got %d", l.lookaround)
	}

	if len(amplitudes) == 0 {
		return []Peak{}, nil
	}

	logger := l.logger.WithFields(logging.Fields{
		"function": "Locate",
		"bins":     len(amplitudes),
	})

	candidates := l.candidateBins(amplitudes)

	// Refinement: take the strongest bin in the window around each coarse
	// candidate. Windows at the sequence ends clamp to valid indices.
	// Candidates refining to the same bin collapse into one peak.
	n := len(amplitudes)
	seen := make(map[int]bool)
	var bins []int

	for _, idx := range candidates {
		lo := common.ClampInt(idx-l.lookaround, 0, n-1)
		hi := common.ClampInt(idx+l.lookaround, 1, n)

		refined := lo + common.ArgMax(amplitudes[lo:hi])
		if !seen[refined] {
			seen[refined] = true
			bins = append(bins, refined)
		}
	}

	sort.Ints(bins)

	result := make([]Peak, 0, len(bins))
	for _, bin := range bins {
		result = append(result, Peak{
			Frequency: frequencies[bin],
			Amplitude: amplitudes[bin],
			BinIndex:  bin,
		})
	}

	logger.Debug("Peak detection completed", logging.Fields{
		"candidates": len(candidates),
		"peaks":      len(result),
	})

	return result, nil
}

// candidateBins runs the coarse wavelet scan and returns candidate bin
// indices: the start columns of ridge lines that survive length and SNR
// filtering.
func (l *Locator) candidateBins(amplitudes []float64) []int {
	widths := make([]float64, l.width)
	for i := range widths {
		widths[i] = float64(i + 1)
	}

	mat := CWT(amplitudes, widths)

	maxDistances := make([]float64, len(widths))
	for i, w := range widths {
		maxDistances[i] = w / 4.0
	}

	gapThresh := int(math.Ceil(widths[0]))
	minLength := int(math.Ceil(float64(len(widths)) / 4.0))

	lines := identifyRidgeLines(mat, maxDistances, gapThresh)
	filtered := filterRidgeLines(mat, lines, minLength, l.minSNR, l.noisePerc)

	candidates := make([]int, 0, len(filtered))
	for _, line := range filtered {
		candidates = append(candidates, line.cols[0])
	}

	return candidates
}
