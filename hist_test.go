package plotgeom

import (
	"math"
	"reflect"
	"strconv"
	"testing"
)

var binTests = []struct {
	samples    []float64
	bins       int
	wantPos    []float64
	wantCounts []int
}{
	// Four buckets over [0,4]; the maximum stays in the last bucket.
	{[]float64{0, 1, 2, 3, 4}, 4,
		[]float64{0, 4.0 / 3, 8.0 / 3, 4}, []int{1, 1, 1, 2}},
	// All samples identical: everything lands in the last bucket.
	{[]float64{1, 1, 1, 1}, 4,
		[]float64{1, 1, 1, 1}, []int{0, 0, 0, 4}},
	// A single sample behaves the same way.
	{[]float64{7}, 3,
		[]float64{7, 7, 7}, []int{0, 0, 1}},
	// One bucket takes everything.
	{[]float64{2, 9, 4}, 1,
		[]float64{2}, []int{3}},
	// Non-finite samples are dropped before binning.
	{[]float64{0, math.NaN(), 2, math.Inf(1), 4}, 2,
		[]float64{0, 4}, []int{1, 2}},
	// Nothing usable at all.
	{[]float64{math.NaN()}, 5, nil, nil},
	{nil, 10, nil, nil},
}

func TestBin(t *testing.T) {
	for i, tc := range binTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			pos, counts, err := Bin(tc.samples, tc.bins)
			if err != nil {
				t.Fatalf("Bin(%v, %d): %v", tc.samples, tc.bins, err)
			}
			if !floatsEqual(pos, tc.wantPos) {
				t.Errorf("positions = %v, want %v", pos, tc.wantPos)
			}
			if !reflect.DeepEqual(counts, tc.wantCounts) {
				t.Errorf("counts = %v, want %v", counts, tc.wantCounts)
			}
		})
	}
}

func TestBinConservation(t *testing.T) {
	samples := []float64{0.1, 0.9, 3.7, 2.2, 2.2, 5.5, -1, 8, 8, 8}
	for bins := 1; bins <= 12; bins++ {
		pos, counts, err := Bin(samples, bins)
		if err != nil {
			t.Fatalf("bins=%d: %v", bins, err)
		}
		if len(pos) != bins || len(counts) != bins {
			t.Errorf("bins=%d: got %d positions, %d counts",
				bins, len(pos), len(counts))
		}
		sum := 0
		for _, c := range counts {
			if c < 0 {
				t.Errorf("bins=%d: negative count in %v", bins, counts)
			}
			sum += c
		}
		if sum != len(samples) {
			t.Errorf("bins=%d: counts sum to %d, want %d",
				bins, sum, len(samples))
		}
	}
}

// A sample one ulp below the maximum can normalize to a ratio of
// exactly 1; it must be counted in the last bucket, not past it.
func TestBinNearMax(t *testing.T) {
	m, M := 21.426387258237494, 59.492106188206094
	samples := []float64{m, math.Nextafter(M, m), M}

	pos, counts, err := Bin(samples, 29)
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != 29 || len(counts) != 29 {
		t.Fatalf("got %d positions, %d counts, want 29 each",
			len(pos), len(counts))
	}
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != len(samples) {
		t.Errorf("counts sum to %d, want %d", sum, len(samples))
	}
	if counts[28] != 2 {
		t.Errorf("last bucket holds %d samples, want 2", counts[28])
	}
}

func TestBinBadBins(t *testing.T) {
	for _, bins := range []int{0, -3} {
		if _, _, err := Bin([]float64{1, 2}, bins); err == nil {
			t.Errorf("Bin with %d bins did not fail", bins)
		}
	}
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}
