package peaks

import (
	"math"
	"sort"

	"github.com/RyanBlaney/sonido-resynth/algorithms/common"
)

// ridgeLine tracks one chain of wavelet maxima across scales. rows and cols
// are appended in discovery order, from the largest scale visited down to the
// smallest; gap counts consecutive scales without a connected maximum.
type ridgeLine struct {
	rows []int
	cols []int
	gap  int
}

// relativeMaxima returns the indices of samples strictly greater than both
// neighbors. Boundary samples are never reported.
func relativeMaxima(row []float64) []int {
	var maxima []int

	for i := 1; i < len(row)-1; i++ {
		if row[i] > row[i-1] && row[i] > row[i+1] {
			maxima = append(maxima, i)
		}
	}

	return maxima
}

// identifyRidgeLines links relative maxima of the CWT matrix across scales.
// Starting from the largest scale that has any maxima and walking toward the
// smallest, each maximum attaches to the nearest open line whose last column
// is within maxDistances[row]; otherwise it opens a new line. Lines that miss
// connections for more than gapThresh consecutive rows are closed.
func identifyRidgeLines(mat [][]float64, maxDistances []float64, gapThresh int) []*ridgeLine {
	numRows := len(mat)

	allMaxima := make([][]int, numRows)
	startRow := -1
	for r := 0; r < numRows; r++ {
		allMaxima[r] = relativeMaxima(mat[r])
		if len(allMaxima[r]) > 0 {
			startRow = r
		}
	}

	if startRow < 0 {
		return nil
	}

	var lines []*ridgeLine
	for _, col := range allMaxima[startRow] {
		lines = append(lines, &ridgeLine{rows: []int{startRow}, cols: []int{col}})
	}

	var closed []*ridgeLine

	for row := startRow - 1; row >= 0; row-- {
		for _, line := range lines {
			line.gap++
		}

		// Columns open lines ended on before this row; lines opened during
		// this row are not connection candidates.
		prevCols := make([]int, len(lines))
		for i, line := range lines {
			prevCols[i] = line.cols[len(line.cols)-1]
		}
		numOpen := len(lines)

		for _, col := range allMaxima[row] {
			closest := -1
			closestDist := math.Inf(1)
			for i := 0; i < numOpen; i++ {
				dist := math.Abs(float64(col - prevCols[i]))
				if dist < closestDist {
					closestDist = dist
					closest = i
				}
			}

			if closest >= 0 && closestDist <= maxDistances[row] {
				lines[closest].rows = append(lines[closest].rows, row)
				lines[closest].cols = append(lines[closest].cols, col)
				lines[closest].gap = 0
			} else {
				lines = append(lines, &ridgeLine{rows: []int{row}, cols: []int{col}})
			}
		}

		kept := lines[:0]
		for _, line := range lines {
			if line.gap > gapThresh {
				closed = append(closed, line)
			} else {
				kept = append(kept, line)
			}
		}
		lines = kept
	}

	return append(closed, lines...)
}

// noiseFloorFraction clamps the local noise estimate to a small fraction of
// the strongest smallest-scale response, so numerically silent regions of the
// spectrum cannot pass the SNR gate on rounding noise alone.
const noiseFloorFraction = 1e-6

// filterRidgeLines keeps ridges that span at least minLength scales and whose
// largest-scale response clears minSNR against a local noise floor. The noise
// floor is the noisePerc percentile (0-100) of the absolute smallest-scale
// row in a window around the ridge start column.
func filterRidgeLines(mat [][]float64, lines []*ridgeLine, minLength int, minSNR, noisePerc float64) []*ridgeLine {
	if len(mat) == 0 || len(lines) == 0 {
		return nil
	}

	rowOne := mat[0]
	numPoints := len(rowOne)

	absRowOne := make([]float64, numPoints)
	for i, v := range rowOne {
		absRowOne[i] = math.Abs(v)
	}

	windowSize := int(math.Ceil(float64(numPoints) / 20.0))
	if windowSize < 1 {
		windowSize = 1
	}
	hfWindow := windowSize / 2
	odd := windowSize % 2

	floor := noiseFloorFraction * common.MaxAbs(rowOne)

	var kept []*ridgeLine

	for _, line := range lines {
		if len(line.rows) < minLength {
			continue
		}

		col := line.cols[0]
		lo := common.ClampInt(col-hfWindow, 0, numPoints)
		hi := common.ClampInt(col+hfWindow+odd, 0, numPoints)

		noise := common.Percentile(absRowOne[lo:hi], noisePerc/100.0)
		if noise < floor {
			noise = floor
		}
		if noise <= 0 {
			continue
		}

		snr := math.Abs(mat[line.rows[0]][col]) / noise
		if snr >= minSNR {
			kept = append(kept, line)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].cols[0] < kept[j].cols[0]
	})

	return kept
}
