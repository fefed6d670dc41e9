package common

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3}); math.Abs(got-2.0) > 1e-12 {
		t.Fatalf("mean mismatch: got %f want 2", got)
	}
	if got := Mean(nil); got != 0 {
		t.Fatalf("mean of empty slice: got %f want 0", got)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, 4}); math.Abs(got-math.Sqrt(12.5)) > 1e-12 {
		t.Fatalf("rms mismatch: got %f want %f", got, math.Sqrt(12.5))
	}
	if got := RMS([]float64{0, 0, 0}); got != 0 {
		t.Fatalf("rms of zeros: got %f want 0", got)
	}
}

func TestPercentileMedian(t *testing.T) {
	if got := Percentile([]float64{3, 1, 2}, 0.5); math.Abs(got-2.0) > 1e-12 {
		t.Fatalf("median mismatch: got %f want 2", got)
	}
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	if got := Correlation(x, y); math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("correlation of scaled copy: got %f want 1", got)
	}

	if got := Correlation(x, []float64{1, 2}); got != 0 {
		t.Fatalf("correlation of mismatched lengths: got %f want 0", got)
	}
}

func TestArgMaxTiesResolveToLowestIndex(t *testing.T) {
	if got := ArgMax([]float64{0, 5, 3, 5, 1}); got != 1 {
		t.Fatalf("argmax tie: got %d want 1", got)
	}
	if got := ArgMax(nil); got != -1 {
		t.Fatalf("argmax of empty slice: got %d want -1", got)
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs([]float64{1, -7, 3}); math.Abs(got-7.0) > 1e-12 {
		t.Fatalf("maxabs mismatch: got %f want 7", got)
	}
}

func TestClampInt(t *testing.T) {
	cases := []struct {
		value, lo, hi, want int
	}{
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{5, 0, 10, 5},
	}

	for _, c := range cases {
		if got := ClampInt(c.value, c.lo, c.hi); got != c.want {
			t.Fatalf("ClampInt(%d, %d, %d): got %d want %d", c.value, c.lo, c.hi, got, c.want)
		}
	}
}
