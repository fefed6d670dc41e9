package peaks

// CWT computes a continuous wavelet transform of data using Ricker wavelets.
// Row i of the result is data convolved (same-length mode) with a wavelet of
// scale widths[i], so rows are index-aligned with the input sequence.
func CWT(data []float64, widths []float64) [][]float64 {
	out := make([][]float64, len(widths))

	for i, w := range widths {
		points := min(10*int(w), len(data))
		if points < 1 {
			points = 1
		}

		out[i] = convolveSame(data, Ricker(points, w))
	}

	return out
}

// convolveSame convolves data with kernel and returns the centered portion
// with the same length as data. Out-of-range samples are treated as zero.
func convolveSame(data, kernel []float64) []float64 {
	n := len(data)
	m := len(kernel)
	offset := (m - 1) / 2

	out := make([]float64, n)

	for i := range out {
		acc := 0.0
		for j, k := range kernel {
			idx := i + offset - j
			if idx >= 0 && idx < n {
				acc += data[idx] * k
			}
		}
		out[i] = acc
	}

	return out
}
