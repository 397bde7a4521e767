// +build ignore

package main

import (
	"image/color"
	"math/rand"
	"os"

	"github.com/hvogt/plotgeom/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	rnd := rand.New(rand.NewSource(42))
	samples := make([]float64, 2000)
	for i := range samples {
		// Sum of uniforms for a bell-ish shape.
		samples[i] = rnd.Float64() + rnd.Float64() + rnd.Float64()
	}

	hist := geom.Histogram{Samples: samples, Bins: 20}

	p, err := plot.New()
	if err != nil {
		panic(err)
	}
	p.Title.Text = "Histogram"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Count"

	polys, err := hist.Plotters()
	if err != nil {
		panic(err)
	}
	for _, poly := range polys {
		poly.Color = color.RGBA{0xd4, 0x6e, 0x41, 0xff}
		p.Add(poly)
	}

	xmin, xmax, _, ymax := hist.DataRange()
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = 0, ymax*1.05

	img := vgimg.New(800, 600)
	dc := draw.New(img)
	p.Draw(dc)

	w, err := os.Create("testdata/hist.png")
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
