package plotgeom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultBins is the number of histogram buckets used when the caller
// does not ask for a specific count.
const DefaultBins = 10

// Bin partitions samples into bins equal-width buckets and counts the
// membership of each. It returns the bucket positions, bins evenly
// spaced values from the smallest to the largest sample (both
// inclusive), and the parallel counts.
//
// Non-finite samples are dropped up front, so the counts always sum to
// the number of finite samples. A sample equal to the largest value is
// counted in the last bucket instead of overflowing past it; in
// particular, if all samples share one value the whole set lands in
// the last bucket and the bucket positions collapse onto that value.
// With a single bucket its position is the smallest sample.
//
// An empty sample set yields empty outputs. bins must be at least 1.
func Bin(samples []float64, bins int) (pos []float64, counts []int, err error) {
	if bins < 1 {
		return nil, nil, fmt.Errorf("plotgeom: %d histogram bins, need at least 1", bins)
	}

	var fin []float64
	for _, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}
		fin = append(fin, s)
	}
	if len(fin) == 0 {
		return nil, nil, nil
	}

	m, M := floats.Min(fin), floats.Max(fin)

	pos = make([]float64, bins)
	if bins == 1 {
		pos[0] = m
	} else {
		floats.Span(pos, m, M)
	}

	counts = make([]int, bins)
	for _, s := range fin {
		idx := bins - 1
		if s != M {
			idx = int((s - m) / (M - m) * float64(bins))
			// The ratio can round up to 1 for samples just below M;
			// such samples belong to the last bucket like M itself.
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}
	return pos, counts, nil
}
