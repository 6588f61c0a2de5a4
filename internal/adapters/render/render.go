// Package render draws bar and scatter chart specs to PNG with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
)

// ErrUnsupportedKind is returned for chart kinds without a raster renderer.
var ErrUnsupportedKind = errors.New("render: unsupported chart kind")

const (
	DefaultWidth = 12 * vg.Inch
	barWidth     = 20
	pxPerInch    = 96
)

var dashes = []vg.Length{vg.Points(5), vg.Points(5)}

// PNG draws chart to w. The height follows the chart's pixel height when set.
func PNG(w io.Writer, chart charts.Chart, width vg.Length) error {
	if width <= 0 {
		width = DefaultWidth
	}
	height := 6 * vg.Inch
	if chart.Height > 0 {
		height = vg.Length(chart.Height) / pxPerInch * vg.Inch
	}

	p, err := Plot(chart)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}
	return nil
}

// Plot builds the gonum plot for a chart without encoding it.
func Plot(chart charts.Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = chart.Title
	if chart.Subtitle != "" {
		p.Title.Text += "\n" + chart.Subtitle
	}
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = chart.XAxis.Title
	p.Y.Label.Text = chart.YAxis.Title

	var err error
	switch chart.Kind {
	case charts.KindBar:
		err = addBars(p, chart)
	case charts.KindScatter:
		err = addScatter(p, chart)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, chart.Kind)
	}
	if err != nil {
		return nil, err
	}

	if len(chart.YAxis.Ticks) > 0 {
		ticks := make(plot.ConstantTicks, len(chart.YAxis.Ticks))
		for i, t := range chart.YAxis.Ticks {
			ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
		}
		p.Y.Tick.Marker = ticks
		p.Y.Min = math.Min(p.Y.Min, ticks[0].Value)
		p.Y.Max = math.Max(p.Y.Max, ticks[len(ticks)-1].Value)
	}
	if r := chart.YAxis.Range; len(r) == 2 {
		p.Y.Min, p.Y.Max = r[0], r[1]
	}

	if err := addGuides(p, chart.Guides); err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid())
	return p, nil
}

// addBars draws one bar per point so each can carry its own colour.
func addBars(p *plot.Plot, chart charts.Chart) error {
	if len(chart.Series) == 0 {
		return nil
	}
	points := chart.Series[0].Points
	labels := make([]string, len(points))
	for i, pt := range points {
		bar, err := plotter.NewBarChart(plotter.Values{pt.Y}, vg.Points(barWidth))
		if err != nil {
			return fmt.Errorf("render: bar %s: %w", pt.Label, err)
		}
		bar.XMin = float64(i)
		bar.Color = colorOf(pt.Color)
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
		labels[i] = pt.Label
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0
	return nil
}

func addScatter(p *plot.Plot, chart charts.Chart) error {
	for _, s := range chart.Series {
		if len(s.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Points))
		labels := make([]string, len(s.Points))
		for i, pt := range s.Points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
			labels[i] = pt.Label
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("render: series %s: %w", s.Name, err)
		}
		sc.GlyphStyle.Color = colorOf(s.Color)
		sc.GlyphStyle.Radius = vg.Points(s.Points[0].Size / 2)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		if chart.ShowLegend {
			p.Legend.Add(s.Name, sc)
		}

		lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return fmt.Errorf("render: labels %s: %w", s.Name, err)
		}
		p.Add(lbl)
	}
	p.Legend.Top = true
	return nil
}

// addGuides draws dashed reference lines. Horizontal guides span the x range,
// vertical ones the y range known so far.
func addGuides(p *plot.Plot, guides []charts.Guide) error {
	for _, g := range guides {
		c := colorOf(g.Color)
		switch g.Orientation {
		case "h":
			v := g.Value
			fn := plotter.NewFunction(func(float64) float64 { return v })
			fn.Color = c
			fn.Width = vg.Points(2)
			fn.Dashes = dashes
			p.Add(fn)
			p.Legend.Add(g.Label, fn)
		case "v":
			line, err := plotter.NewLine(plotter.XYs{{X: g.Value, Y: p.Y.Min}, {X: g.Value, Y: p.Y.Max}})
			if err != nil {
				return fmt.Errorf("render: guide %s: %w", g.Label, err)
			}
			line.Color = c
			line.Width = vg.Points(2)
			line.Dashes = dashes
			p.Add(line)
			p.Legend.Add(g.Label, line)
		default:
			log.Printf("WARN render: skipping guide %q with orientation %q", g.Label, g.Orientation)
		}
	}
	return nil
}

func colorOf(s string) color.Color {
	c, err := charts.ParseColor(s)
	if err != nil {
		log.Printf("WARN render: %v; using neutral grey", err)
		c, _ = charts.ParseColor(charts.Neutral)
	}
	return c
}
