package geom

import (
	"gonum.org/v1/plot/plotter"

	"github.com/hvogt/plotgeom"
)

// Histogram bins a sample column into equal-width buckets and draws
// the buckets as bars centered on the bucket positions.
type Histogram struct {
	Samples []float64

	// Bins is the number of buckets. The zero value means
	// plotgeom.DefaultBins.
	Bins int

	// Width is the bucket bar width as a fraction of the bucket
	// spacing. The zero value means full-width buckets.
	Width float64
}

func (h Histogram) bins() int {
	if h.Bins == 0 {
		return plotgeom.DefaultBins
	}
	return h.Bins
}

// Bin returns the bucket positions and counts of h.
func (h Histogram) Bin() (pos []float64, counts []int, err error) {
	return plotgeom.Bin(h.Samples, h.bins())
}

func (h Histogram) bar() (Bar, error) {
	pos, counts, err := h.Bin()
	if err != nil {
		return Bar{}, err
	}
	y := make([]float64, len(counts))
	for i, c := range counts {
		y[i] = float64(c)
	}
	width := h.Width
	if width == 0 {
		width = 1
	}
	return Bar{X: pos, Y: y, Width: width}, nil
}

// Polygons returns the closed outline of every bucket bar.
func (h Histogram) Polygons() (xp, yp [][]float64, err error) {
	b, err := h.bar()
	if err != nil {
		return nil, nil, err
	}
	return b.Polygons()
}

// Plotters returns one polygon plotter per bucket, ready to be added
// to a gonum plot.
func (h Histogram) Plotters() ([]*plotter.Polygon, error) {
	b, err := h.bar()
	if err != nil {
		return nil, err
	}
	return b.Plotters()
}

// DataRange implements plot.DataRanger over the bucket bars.
func (h Histogram) DataRange() (xmin, xmax, ymin, ymax float64) {
	b, err := h.bar()
	if err != nil {
		b = Bar{}
	}
	return b.DataRange()
}
