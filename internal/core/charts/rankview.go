package charts

import (
	"fmt"
	"strings"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/metrics"
)

// AxisMode controls how a rank view plots its values.
type AxisMode string

const (
	AxisValue      AxisMode = "value"
	AxisYearOffset AxisMode = "year_offset"
)

// RankView is the configuration behind one rank bar chart. Direction lives
// here, not in the engine.
type RankView struct {
	Key                string        `yaml:"key" json:"key"`
	Name               string        `yaml:"name" json:"name"`
	Metric             domain.Metric `yaml:"-" json:"metric"`
	Ascending          bool          `yaml:"ascending" json:"ascending"`
	Label              string        `yaml:"label" json:"label"`
	XAxis              string        `yaml:"x_axis" json:"x_axis"`
	ShowAverage        bool          `yaml:"show_average" json:"show_average"`
	AnnotationPosition string        `yaml:"annotation_position" json:"annotation_position"`
	AxisMode           AxisMode      `yaml:"axis_mode" json:"axis_mode"`
	TickStep           int           `yaml:"tick_step" json:"tick_step"`
}

// DefaultRankViews are the four ranking tabs of the profile page.
func DefaultRankViews() RankViews {
	return RankViews{
		{
			Key: "tempo", Name: "Tempo Rank", Metric: domain.MetricTempo, Ascending: true,
			Label: "Tempo (BPM)", XAxis: "Slowest → Fastest", ShowAverage: true,
			AnnotationPosition: "top left", AxisMode: AxisValue,
		},
		{
			Key: "duration", Name: "Duration Rank", Metric: domain.MetricDuration, Ascending: true,
			Label: "Duration (seconds)", XAxis: "Shortest → Longest", ShowAverage: true,
			AnnotationPosition: "top left", AxisMode: AxisValue,
		},
		{
			Key: "year", Name: "Year Written Rank", Metric: domain.MetricYear, Ascending: false,
			Label: "Year Written", XAxis: "Newest → Oldest", ShowAverage: true,
			AnnotationPosition: "top right", AxisMode: AxisYearOffset, TickStep: metrics.DefaultTickStep,
		},
		{
			Key: "tropes", Name: "Trope Density Rank", Metric: domain.MetricTropeCount, Ascending: true,
			Label: "Total Tropes", XAxis: "Least → Most", ShowAverage: true,
			AnnotationPosition: "top left", AxisMode: AxisValue,
		},
	}
}

// RankViews is an ordered set of rank views.
type RankViews []RankView

// Lookup resolves a view by key or display name, case-insensitively.
func (v RankViews) Lookup(name string) (RankView, error) {
	n := strings.TrimSpace(name)
	for _, rv := range v {
		if strings.EqualFold(rv.Key, n) || strings.EqualFold(rv.Name, n) {
			return rv, nil
		}
	}
	return RankView{}, fmt.Errorf("%w: %q", ErrUnknownView, name)
}
