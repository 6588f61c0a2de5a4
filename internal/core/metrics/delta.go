package metrics

import (
	"math"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// Direction says whether a value sits above, below or level with a reference.
type Direction string

const (
	Up   Direction = "UP"
	Down Direction = "DOWN"
	Tie  Direction = "TIE"
)

// Arrow is the glyph the dashboard prints next to a delta.
func (d Direction) Arrow() string {
	switch d {
	case Up:
		return "↑"
	case Down:
		return "↓"
	}
	return ""
}

// Delta is a signed comparison split into direction and size.
type Delta struct {
	Direction Direction `json:"direction"`
	Magnitude float64   `json:"magnitude"`
}

// DeltaOf compares value against reference.
func DeltaOf(value, reference float64) Delta {
	d := Delta{Direction: Tie, Magnitude: math.Abs(value - reference)}
	switch {
	case value > reference:
		d.Direction = Up
	case value < reference:
		d.Direction = Down
	}
	return d
}

// PercentDelta is 100*(value-reference)/reference.
func PercentDelta(value, reference float64) (float64, error) {
	if reference == 0 {
		return 0, domain.ErrDivisionByZero
	}
	return 100 * (value - reference) / reference, nil
}

// Round rounds to the given number of decimal places. Display helper only.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
