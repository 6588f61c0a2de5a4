package charts

import (
	"fmt"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/metrics"
)

const otherSchools = "Other Schools"

// TempoDuration plots tempo against duration with the conference means as
// guide lines. With no highlights every school gets its primary colour;
// otherwise highlighted schools are enlarged and the rest are grey.
func TempoDuration(songs []domain.Song, palette Palette, highlights ...string) (Chart, error) {
	if len(songs) == 0 {
		return Chart{}, domain.ErrEmptyDataset
	}

	picked := make(map[string]bool, len(highlights))
	for _, h := range highlights {
		if !hasSchool(songs, h) {
			return Chart{}, domain.SchoolNotFoundError{School: h}
		}
		picked[h] = true
	}

	var series []Series
	var others Series
	for _, s := range songs {
		p := Point{Label: s.School, X: s.Duration, Y: s.Tempo, Size: 12}
		switch {
		case len(picked) == 0:
			p.Color = palette.Primary(s.School)
			series = append(series, Series{Name: s.School, Color: p.Color, Points: []Point{p}})
		case picked[s.School]:
			p.Color, p.Size = palette.Primary(s.School), 16
			series = append(series, Series{Name: s.School, Color: p.Color, Points: []Point{p}})
		default:
			p.Color = Neutral
			others.Points = append(others.Points, p)
		}
	}
	if len(others.Points) > 0 {
		others.Name, others.Color = otherSchools, Neutral
		series = append(series, others)
	}

	meanDuration := metrics.Mean(songs, domain.MetricDuration)
	meanTempo := metrics.Mean(songs, domain.MetricTempo)
	tempoPos := "bottom right"
	if len(picked) > 0 {
		tempoPos = "right"
	}

	return Chart{
		Kind:   KindScatter,
		Title:  "Big Ten Tempo vs. Duration",
		XAxis:  Axis{Title: "Duration (Seconds)"},
		YAxis:  Axis{Title: "Tempo (BPM)"},
		Series: series,
		Guides: []Guide{
			{Orientation: "v", Value: meanDuration, Label: fmt.Sprintf("Avg Duration: %.2f", meanDuration), Color: "gray", Position: "top"},
			{Orientation: "h", Value: meanTempo, Label: fmt.Sprintf("Avg Tempo: %.2f", meanTempo), Color: "gray", Position: tempoPos},
		},
		ShowLegend: true,
		Height:     520,
	}, nil
}

func hasSchool(songs []domain.Song, school string) bool {
	for _, s := range songs {
		if s.School == school {
			return true
		}
	}
	return false
}
