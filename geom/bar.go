// Package geom expands resolved plot data into drawable geometry.
//
// The concept is loosely based on ggplot2's geoms: each geom bundles
// its data with the parameters of its shape. Bar turns center/height
// pairs into closed rectangle outlines, Histogram bins a sample column
// and draws the buckets as bars. Every geom produces plain coordinate
// slices for terminal-style renderers as well as gonum/plot plotters
// for canvas rendering, and reports its data range so a plot can be
// scaled around it.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

// ShapeError reports center and height sequences of different lengths.
type ShapeError struct {
	XLen, YLen int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("geom: %d x-coordinates but %d heights", e.XLen, e.YLen)
}

// BarPolygons expands paired bar centers and heights into one closed
// rectangle outline per bar. Each outline is a pair of length-5
// coordinate sequences listing (left,base), (left,top), (right,top),
// (right,base) and closing on (left,base) again.
//
// width is the bar width as a fraction of the inter-bar spacing. The
// spacing is the single shared value (max(x)-min(x))/(n-1): bars are
// assumed to be evenly spaced and an irregular gap between two
// neighbours is not honored per bar. With exactly one bar the spacing
// is taken as 1, so the bar is width wide.
//
// An empty series yields empty outputs; sequences of different length
// are rejected with a ShapeError before any geometry is computed.
func BarPolygons(x, y []float64, width, base float64) (xp, yp [][]float64, err error) {
	if len(x) != len(y) {
		return nil, nil, &ShapeError{XLen: len(x), YLen: len(y)}
	}
	if len(x) == 0 {
		return nil, nil, nil
	}

	spacing := 1.0
	if len(x) > 1 {
		spacing = (floats.Max(x) - floats.Min(x)) / float64(len(x)-1)
	}
	halfwidth := spacing * width / 2

	xp = make([][]float64, len(x))
	yp = make([][]float64, len(x))
	for i := range x {
		left, right := x[i]-halfwidth, x[i]+halfwidth
		xp[i] = []float64{left, left, right, right, left}
		yp[i] = []float64{base, y[i], y[i], base, base}
	}
	return xp, yp, nil
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws rectangles standing (or hanging) from a common baseline.
type Bar struct {
	// X are the bar centers, typically the coordinates of a resolved
	// series. Y are the bar heights. Both must have the same length.
	X, Y []float64

	// Width is the bar width as a fraction of the bar spacing.
	// The zero value means the default of 0.8.
	Width float64

	// Base is the value the bars are drawn from.
	Base float64
}

func (b Bar) width() float64 {
	if b.Width == 0 {
		return 0.8
	}
	return b.Width
}

// Polygons returns the closed outline of every bar.
func (b Bar) Polygons() (xp, yp [][]float64, err error) {
	return BarPolygons(b.X, b.Y, b.width(), b.Base)
}

// Plotters returns one polygon plotter per bar, ready to be added to a
// gonum plot.
func (b Bar) Plotters() ([]*plotter.Polygon, error) {
	xp, yp, err := b.Polygons()
	if err != nil {
		return nil, err
	}

	ps := make([]*plotter.Polygon, len(xp))
	for i := range xp {
		pts := make(plotter.XYs, len(xp[i]))
		for j := range pts {
			pts[j].X, pts[j].Y = xp[i][j], yp[i][j]
		}
		p, err := plotter.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	return ps, nil
}

// DataRange implements plot.DataRanger over the full bar outlines,
// baseline included.
func (b Bar) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)

	xp, yp, err := b.Polygons()
	if err != nil {
		return xmin, xmax, ymin, ymax
	}
	for i := range xp {
		xmin, xmax = math.Min(xmin, floats.Min(xp[i])), math.Max(xmax, floats.Max(xp[i]))
		ymin, ymax = math.Min(ymin, floats.Min(yp[i])), math.Max(ymax, floats.Max(yp[i]))
	}
	return xmin, xmax, ymin, ymax
}
