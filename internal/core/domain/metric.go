package domain

import (
	"fmt"
	"strings"
)

// Metric is one of the tracked numeric song attributes.
type Metric int

const (
	MetricTempo Metric = iota
	MetricDuration
	MetricYear
	MetricTropeCount
	MetricFightMentions
)

// TrackedMetrics lists every metric in display order.
var TrackedMetrics = []Metric{
	MetricTempo, MetricDuration, MetricYear, MetricTropeCount, MetricFightMentions,
}

var metricInfo = map[Metric]struct {
	key            string
	label          string
	higherIsBetter bool
}{
	MetricTempo:         {"tempo", "Tempo (BPM)", true},
	MetricDuration:      {"duration", "Duration (seconds)", true},
	MetricYear:          {"year", "Year Written", false},
	MetricTropeCount:    {"trope_count", "Trope Count", true},
	MetricFightMentions: {"fight_mentions", `Number of "Fights"`, true},
}

// Value reads the metric from a song.
func (m Metric) Value(s Song) float64 {
	switch m {
	case MetricTempo:
		return s.Tempo
	case MetricDuration:
		return s.Duration
	case MetricYear:
		return float64(s.Year)
	case MetricTropeCount:
		return float64(s.TropeCount())
	case MetricFightMentions:
		return float64(s.FightMentions)
	}
	return 0
}

// Key is the stable machine name, e.g. "trope_count".
func (m Metric) Key() string {
	if info, ok := metricInfo[m]; ok {
		return info.key
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

func (m Metric) String() string { return m.Key() }

// MarshalText encodes the metric by its key.
func (m Metric) MarshalText() ([]byte, error) {
	return []byte(m.Key()), nil
}

// Label is the human readable axis label.
func (m Metric) Label() string {
	return metricInfo[m].label
}

// HigherIsBetter reports which side wins a head-to-head. Year is the only
// metric where the smaller (older) value wins.
func (m Metric) HigherIsBetter() bool {
	return metricInfo[m].higherIsBetter
}

// ParseMetric accepts the metric key as well as the source column names
// (bpm, sec_duration, number_fights).
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tempo", "bpm":
		return MetricTempo, nil
	case "duration", "sec_duration":
		return MetricDuration, nil
	case "year":
		return MetricYear, nil
	case "trope_count", "tropes":
		return MetricTropeCount, nil
	case "fight_mentions", "number_fights", "fights":
		return MetricFightMentions, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}
