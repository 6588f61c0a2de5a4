// Package charts turns metrics results into render-agnostic chart specs.
// Builders are pure functions of (songs, configuration); they never draw.
package charts

import "errors"

// ErrUnknownView is returned when a rank view name does not resolve.
var ErrUnknownView = errors.New("charts: unknown rank view")

// Kind selects how a Chart should be drawn.
type Kind string

const (
	KindRadar   Kind = "radar"
	KindHeatmap Kind = "heatmap"
	KindScatter Kind = "scatter"
	KindBar     Kind = "bar"
)

// Chart is the renderer-neutral description of one figure.
type Chart struct {
	Kind       Kind     `json:"kind"`
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle,omitempty"`
	XAxis      Axis     `json:"x_axis"`
	YAxis      Axis     `json:"y_axis"`
	Series     []Series `json:"series"`
	Guides     []Guide  `json:"guides,omitempty"`
	Heatmap    *Heatmap `json:"heatmap,omitempty"`
	Badges     []Badge  `json:"badges,omitempty"`
	ShowLegend bool     `json:"show_legend"`
	Height     int      `json:"height"`
}

// Axis describes one chart axis. For radar charts YAxis is the radial axis.
type Axis struct {
	Title string     `json:"title,omitempty"`
	Range []float64  `json:"range,omitempty"` // [min, max] when fixed
	Ticks []AxisTick `json:"ticks,omitempty"`
}

// AxisTick places a custom label at an axis value.
type AxisTick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Series is one named trace.
type Series struct {
	Name      string  `json:"name"`
	Color     string  `json:"color,omitempty"`
	FillColor string  `json:"fill_color,omitempty"`
	LineWidth float64 `json:"line_width,omitempty"`
	Points    []Point `json:"points"`
}

// Point is a single datum. Bar and radar charts use Label as the category.
type Point struct {
	Label  string  `json:"label"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y"`
	Color  string  `json:"color,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Custom string  `json:"custom,omitempty"`
}

// Guide is a dashed reference line across the plot.
type Guide struct {
	Orientation string  `json:"orientation"` // "h" or "v"
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
	Color       string  `json:"color"`
	Position    string  `json:"position,omitempty"`
}

// Heatmap carries the matrix for KindHeatmap charts.
type Heatmap struct {
	Rows    []string    `json:"rows"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
	Scale   []string    `json:"scale"`
}

// Badge is the "Ranked X of N" callout for a highlighted school.
type Badge struct {
	School string  `json:"school"`
	Color  string  `json:"color"`
	Rank   int     `json:"rank"`
	Total  int     `json:"total"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
}
