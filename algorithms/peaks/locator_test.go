package peaks

import (
	"math"
	"reflect"
	"testing"
)

// addGaussianBump adds a Gaussian bump to data, centered on a bin
func addGaussianBump(data []float64, center int, sigma, amplitude float64) {
	for i := range data {
		x := float64(i - center)
		data[i] += amplitude * math.Exp(-x*x/(2*sigma*sigma))
	}
}

func linearBins(n int, resolution float64) []float64 {
	freqs := make([]float64, n)
	for i := range freqs {
		freqs[i] = float64(i) * resolution
	}
	return freqs
}

func TestLocateSingleBump(t *testing.T) {
	n := 512
	amps := make([]float64, n)
	addGaussianBump(amps, 200, 8, 1.0)
	freqs := linearBins(n, 8000.0/1024.0)

	found, err := NewLocator(10, 5).Locate(freqs, amps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("peak count: got %d want 1 (%+v)", len(found), found)
	}
	if found[0].BinIndex != 200 {
		t.Fatalf("peak bin: got %d want 200", found[0].BinIndex)
	}
	if found[0].Frequency != freqs[200] {
		t.Fatalf("peak frequency: got %f want %f", found[0].Frequency, freqs[200])
	}
	if found[0].Amplitude != amps[200] {
		t.Fatalf("peak amplitude: got %f want %f", found[0].Amplitude, amps[200])
	}
}

func TestLocateTwoSeparatedBumps(t *testing.T) {
	n := 512
	amps := make([]float64, n)
	addGaussianBump(amps, 150, 8, 1.0)
	addGaussianBump(amps, 350, 8, 0.7)
	freqs := linearBins(n, 1.0)

	found, err := NewLocator(10, 5).Locate(freqs, amps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(found) != 2 {
		t.Fatalf("peak count: got %d want 2 (%+v)", len(found), found)
	}
	if found[0].BinIndex != 150 || found[1].BinIndex != 350 {
		t.Fatalf("peak bins: got %d and %d, want 150 and 350",
			found[0].BinIndex, found[1].BinIndex)
	}
}

func TestLocateBoundaryWindowClamps(t *testing.T) {
	// A bump this close to bin 0 forces the refinement window past the
	// start of the sequence; it must clamp instead of indexing out of range
	n := 32
	amps := make([]float64, n)
	addGaussianBump(amps, 3, 1.5, 1.0)
	freqs := linearBins(n, 1.0)

	found, err := NewLocator(3, 10).Locate(freqs, amps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("peak count: got %d want 1 (%+v)", len(found), found)
	}
	if found[0].BinIndex != 3 {
		t.Fatalf("peak bin: got %d want 3", found[0].BinIndex)
	}
}

func TestLocateCollapsesSharedWindowMaximum(t *testing.T) {
	// Two equal bumps four bins apart fall inside one refinement window.
	// Candidates must collapse to a single peak, and the exact-tie between
	// the two equal maxima resolves to the lower bin.
	n := 512
	amps := make([]float64, n)
	addGaussianBump(amps, 100, 1.5, 1.0)
	addGaussianBump(amps, 104, 1.5, 1.0)
	freqs := linearBins(n, 1.0)

	found, err := NewLocator(4, 10).Locate(freqs, amps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("peak count: got %d want 1 (%+v)", len(found), found)
	}
	if found[0].BinIndex != 100 {
		t.Fatalf("tie-break bin: got %d want 100", found[0].BinIndex)
	}
}

func TestLocateSilentInput(t *testing.T) {
	n := 256
	found, err := NewLocator(10, 5).Locate(linearBins(n, 1.0), make([]float64, n))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("peaks in silence: got %d want 0", len(found))
	}
}

func TestLocateEmptyInput(t *testing.T) {
	found, err := NewLocator(10, 5).Locate(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("peaks in empty input: got %d want 0", len(found))
	}
}

func TestLocateInvalidInput(t *testing.T) {
	freqs := linearBins(16, 1.0)
	amps := make([]float64, 16)

	if _, err := NewLocator(10, 5).Locate(freqs, amps[:8]); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if _, err := NewLocator(0, 5).Locate(freqs, amps); err == nil {
		t.Fatal("expected error for non-positive width")
	}
	if _, err := NewLocator(10, 0).Locate(freqs, amps); err == nil {
		t.Fatal("expected error for non-positive lookaround")
	}
}

func TestLocateDeterminism(t *testing.T) {
	n := 512
	amps := make([]float64, n)
	addGaussianBump(amps, 120, 6, 1.0)
	addGaussianBump(amps, 300, 9, 0.4)
	freqs := linearBins(n, 2.5)

	locator := NewLocator(12, 6)

	first, err := locator.Locate(freqs, amps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := locator.Locate(freqs, amps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical runs differ: %+v vs %+v", first, second)
	}
}
