// Package render draws simulated paths as line charts. It is a consumer of
// the simulation output; nothing in the core packages depends on it, so the
// simulator stays usable headlessly.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ChartOptions are the cosmetic knobs for a chart. The zero value selects
// the defaults below.
type ChartOptions struct {
	Title  string
	XLabel string // default "t (years)"
	YLabel string // default "S(t)"
	Color  color.Color
	Width  vg.Length // default 10 inches
	Height vg.Length // default 6 inches
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.XLabel == "" {
		o.XLabel = "t (years)"
	}
	if o.YLabel == "" {
		o.YLabel = "S(t)"
	}
	if o.Color == nil {
		o.Color = color.RGBA{B: 255, A: 255}
	}
	if o.Width == 0 {
		o.Width = 10 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 6 * vg.Inch
	}
	return o
}

// LineChart writes a line chart of values over times to path. The output
// format follows the file extension (.png, .svg, .pdf, ...).
func LineChart(path string, times, values []float64, opt ChartOptions) error {
	if len(times) != len(values) {
		return fmt.Errorf("render: %d times vs %d values", len(times), len(values))
	}
	opt = opt.withDefaults()

	pts := make(plotter.XYs, len(times))
	for i := range pts {
		pts[i].X = times[i]
		pts[i].Y = values[i]
	}

	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("render: build line: %w", err)
	}
	line.Color = opt.Color
	p.Add(line)

	if err := p.Save(opt.Width, opt.Height, path); err != nil {
		return fmt.Errorf("render: save chart: %w", err)
	}
	return nil
}
