package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/metrics"
)

// Highlight marks a school to colour in a chart.
type Highlight struct {
	School string
	Color  string
}

// RankBars builds the conference bar chart for one rank view with up to two
// highlighted schools. Bars follow the view's nominal order; the badge rank
// counts from the far end (N+1-position), so rank 1 is the fastest, longest,
// oldest or most trope-heavy song.
func RankBars(songs []domain.Song, view RankView, avgColor string, highlights ...Highlight) (Chart, error) {
	if len(highlights) == 2 && highlights[0].School == highlights[1].School {
		return Chart{}, domain.ErrIdenticalSelection
	}

	table, err := metrics.NewRankTable(songs, view.Metric, view.Ascending)
	if err != nil {
		return Chart{}, err
	}

	yearMode := view.AxisMode == AxisYearOffset
	var axis metrics.YearAxis
	if yearMode {
		if axis, err = metrics.YearOffset(songs, metrics.DefaultYearMargin); err != nil {
			return Chart{}, err
		}
	}

	colorOf := make(map[string]string, len(highlights))
	for _, h := range highlights {
		if _, err := table.Row(h.School); err != nil {
			return Chart{}, err
		}
		colorOf[h.School] = h.Color
	}

	series := Series{Name: view.Name, Points: make([]Point, 0, table.Len())}
	var sum float64
	for _, row := range table.Rows {
		p := Point{Label: row.School, Y: row.Value, Color: Neutral}
		if yearMode {
			p.Y = axis.Offset(row.Song.Year)
			p.Custom = strconv.Itoa(row.Song.Year)
		}
		if c, ok := colorOf[row.School]; ok {
			p.Color = c
		}
		sum += p.Y
		series.Points = append(series.Points, p)
	}

	chart := Chart{
		Kind:   KindBar,
		XAxis:  Axis{Title: view.XAxis},
		YAxis:  Axis{Title: view.Label},
		Series: []Series{series},
		Height: 500,
	}
	if len(highlights) == 2 {
		chart.Height = 520
	}

	if yearMode {
		step := view.TickStep
		if step == 0 {
			step = metrics.DefaultTickStep
		}
		ticks, err := axis.Ticks(step)
		if err != nil {
			return Chart{}, err
		}
		chart.YAxis = Axis{Title: "Year Written"}
		for _, t := range ticks {
			chart.YAxis.Ticks = append(chart.YAxis.Ticks, AxisTick{Value: t.Value, Label: strconv.Itoa(t.Year)})
		}
	}

	if view.ShowAverage {
		avg := sum / float64(table.Len())
		shown := avg
		if yearMode {
			shown += float64(axis.Base)
		}
		label := "Big Ten Average"
		if len(highlights) == 2 {
			label = "Big Ten Avg"
		}
		chart.Guides = append(chart.Guides, Guide{
			Orientation: "h",
			Value:       avg,
			Label:       fmt.Sprintf("%s: %d", label, int(math.Round(shown))),
			Color:       avgColor,
			Position:    view.AnnotationPosition,
		})
	}

	for _, h := range highlights {
		row, _ := table.Row(h.School)
		b := Badge{
			School: h.School,
			Color:  h.Color,
			Rank:   table.InvertedRank(row.Rank),
			Total:  table.Len(),
			Label:  view.Label,
			Value:  metrics.Round(row.Value, 2),
		}
		if yearMode {
			b.Label, b.Value = "Year Written", float64(row.Song.Year)
		}
		chart.Badges = append(chart.Badges, b)
	}
	chart.Title, chart.Subtitle = rankTitles(chart.Badges)

	return chart, nil
}

func rankTitles(badges []Badge) (string, string) {
	switch len(badges) {
	case 0:
		return "", ""
	case 1:
		b := badges[0]
		return fmt.Sprintf("Ranked %d of %d", b.Rank, b.Total),
			fmt.Sprintf("%s: %s", b.Label, formatValue(b.Value))
	}
	titles := make([]string, len(badges))
	values := make([]string, len(badges))
	for i, b := range badges {
		titles[i] = fmt.Sprintf("%s (#%d)", b.School, b.Rank)
		values[i] = formatValue(b.Value)
	}
	return strings.Join(titles, " | "), fmt.Sprintf("%s: %s", badges[0].Label, strings.Join(values, " vs "))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
