package metrics

import (
	"math"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// Side identifies the winner of a head-to-head metric.
type Side string

const (
	SideLeft  Side = "LEFT"
	SideRight Side = "RIGHT"
	SideTie   Side = "TIE"
)

// MetricComparison is one row of a head-to-head.
type MetricComparison struct {
	Metric    domain.Metric `json:"metric"`
	Left      float64       `json:"left"`
	Right     float64       `json:"right"`
	Winner    Side          `json:"winner"`
	Tie       bool          `json:"tie"`
	Magnitude float64       `json:"magnitude"`
	// Percent is the winner's lead relative to the loser's value. It is only
	// meaningful when PercentOK is set; a zero loser value leaves it unset.
	Percent   float64 `json:"percent"`
	PercentOK bool    `json:"percent_ok"`
}

// Comparison is the full head-to-head between two schools.
type Comparison struct {
	Left    string             `json:"left"`
	Right   string             `json:"right"`
	Metrics []MetricComparison `json:"metrics"`
}

// Compare pits two schools against each other on every tracked metric.
func Compare(ds *domain.Dataset, left, right string) (Comparison, error) {
	if left == right {
		return Comparison{}, domain.ErrIdenticalSelection
	}
	l, err := ds.Lookup(left)
	if err != nil {
		return Comparison{}, err
	}
	r, err := ds.Lookup(right)
	if err != nil {
		return Comparison{}, err
	}

	out := Comparison{Left: left, Right: right, Metrics: make([]MetricComparison, 0, len(domain.TrackedMetrics))}
	for _, m := range domain.TrackedMetrics {
		out.Metrics = append(out.Metrics, CompareMetric(m, m.Value(l), m.Value(r)))
	}
	return out, nil
}

// CompareMetric decides a single metric using its higher-is-better rule.
func CompareMetric(m domain.Metric, left, right float64) MetricComparison {
	mc := MetricComparison{Metric: m, Left: left, Right: right}
	d := DeltaOf(left, right)
	mc.Magnitude = d.Magnitude

	winner, loser := left, right
	switch {
	case d.Direction == Tie:
		mc.Winner, mc.Tie = SideTie, true
	case (d.Direction == Up) == m.HigherIsBetter():
		mc.Winner = SideLeft
	default:
		mc.Winner = SideRight
		winner, loser = right, left
	}

	if pct, err := PercentDelta(winner, loser); err == nil {
		mc.Percent, mc.PercentOK = math.Abs(pct), true
	}
	return mc
}

// Winner returns the winning side's school, or "" for a tie.
func (c Comparison) Winner(m domain.Metric) string {
	for _, mc := range c.Metrics {
		if mc.Metric != m {
			continue
		}
		switch mc.Winner {
		case SideLeft:
			return c.Left
		case SideRight:
			return c.Right
		}
	}
	return ""
}
