package peaks

import "math"

// Ricker returns a Ricker (Mexican hat) wavelet sampled at the given number
// of points. The parameter a sets the wavelet scale; the amplitude follows
// the continuous normalization A = 2 / (sqrt(3a) * pi^(1/4)), so responses
// stay comparable across scales.
func Ricker(points int, a float64) []float64 {
	wavelet := make([]float64, points)

	norm := 2.0 / (math.Sqrt(3.0*a) * math.Pow(math.Pi, 0.25))
	wsq := a * a
	center := (float64(points) - 1.0) / 2.0

	for i := range wavelet {
		x := float64(i) - center
		xsq := x * x
		wavelet[i] = norm * (1.0 - xsq/wsq) * math.Exp(-xsq/(2.0*wsq))
	}

	return wavelet
}
