package windowing

import (
	"math"
	"testing"
)

func TestHannPeriodicCoefficients(t *testing.T) {
	h := NewHann(8, false)
	coeffs := h.GetCoefficients()

	if len(coeffs) != 8 {
		t.Fatalf("coefficient count: got %d want 8", len(coeffs))
	}
	if math.Abs(coeffs[0]) > 1e-12 {
		t.Fatalf("first coefficient: got %f want 0", coeffs[0])
	}
	if math.Abs(coeffs[4]-1.0) > 1e-12 {
		t.Fatalf("center coefficient: got %f want 1", coeffs[4])
	}
}

func TestHannApplySizeMismatch(t *testing.T) {
	h := NewHann(8, false)
	if got := h.Apply(make([]float64, 4)); got != nil {
		t.Fatalf("expected nil for mismatched signal length, got %v", got)
	}
	if err := h.ApplyInPlace(make([]float64, 4)); err == nil {
		t.Fatal("expected error for mismatched signal length")
	}
}

func TestHammingEndpoints(t *testing.T) {
	h := NewHamming(16, true)
	coeffs := h.GetCoefficients()

	if math.Abs(coeffs[0]-0.08) > 1e-12 {
		t.Fatalf("first coefficient: got %f want 0.08", coeffs[0])
	}
	if math.Abs(coeffs[15]-0.08) > 1e-12 {
		t.Fatalf("last coefficient: got %f want 0.08", coeffs[15])
	}
}

func TestRectangularLeavesSignalUnchanged(t *testing.T) {
	r := NewRectangular(4)
	signal := []float64{1, -2, 3, -4}

	windowed := r.Apply(signal)
	for i := range signal {
		if windowed[i] != signal[i] {
			t.Fatalf("sample %d changed: got %f want %f", i, windowed[i], signal[i])
		}
	}

	if err := r.ApplyInPlace(signal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signal[1] != -2 {
		t.Fatalf("in-place rectangular modified the signal: %v", signal)
	}
}

func TestNewDispatch(t *testing.T) {
	cases := []struct {
		windowType Type
		want       string
	}{
		{TypeRectangular, "rectangular"},
		{TypeHann, "hann"},
		{TypeHamming, "hamming"},
		{Type(99), "rectangular"},
	}

	for _, c := range cases {
		w := New(c.windowType, 32)
		if w.GetType() != c.want {
			t.Fatalf("New(%v): got %q want %q", c.windowType, w.GetType(), c.want)
		}
		if w.GetSize() != 32 {
			t.Fatalf("New(%v): size %d want 32", c.windowType, w.GetSize())
		}
	}
}
