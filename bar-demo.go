// +build ignore

package main

import (
	"image/color"
	"os"

	"github.com/hvogt/plotgeom"
	"github.com/hvogt/plotgeom/data"
	"github.com/hvogt/plotgeom/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	reg := plotgeom.NewRegistry()
	series := reg.Resolve(data.Labels("mon", "tue", "wed", "thu", "fri"))
	heights := []float64{12, 7, 15, 4, 9}

	bar := geom.Bar{X: series.Coords, Y: heights}

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Sales per day"
	p.Y.Label.Text = "Sales"

	polys, err := bar.Plotters()
	if err != nil {
		panic(err)
	}
	for _, poly := range polys {
		poly.Color = color.RGBA{0x41, 0x6e, 0xd4, 0xff}
		p.Add(poly)
	}

	// Categorical ticks straight from the registry.
	ticks := []plot.Tick{}
	for i, l := range reg.Labels() {
		ticks = append(ticks, plot.Tick{Value: float64(i + 1), Label: l})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	if lim := plotgeom.BaseLimits(series.Coords); !lim.Unset() {
		p.X.Min, p.X.Max = lim.Min-1, lim.Max+1
	}
	if lim := plotgeom.ValueLimits(heights); !lim.Unset() {
		p.Y.Min, p.Y.Max = 0, lim.Max+1
	}

	img := vgimg.New(800, 600)
	dc := draw.New(img)
	p.Draw(dc)

	w, err := os.Create("testdata/bar.png")
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
