package charts

import (
	"fmt"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/metrics"
)

const radarHeadroom = 1.15

// ConferenceRadar plots the conference-average trope usage.
func ConferenceRadar(songs []domain.Song, tropes []domain.Trope) (Chart, error) {
	if len(songs) == 0 {
		return Chart{}, domain.ErrEmptyDataset
	}
	tropes = orDefault(tropes)

	avg := radarSeries("Big Ten", tropes, metrics.TropeMeans(songs, tropes))
	avg.LineWidth = 3
	return radarChart("Big Ten Trope Identity", "", false, 500, avg), nil
}

// SchoolRadar overlays one school's tropes on the conference average.
func SchoolRadar(ds *domain.Dataset, school string, palette Palette, tropes []domain.Trope) (Chart, error) {
	song, err := ds.Lookup(school)
	if err != nil {
		return Chart{}, err
	}
	tropes = orDefault(tropes)
	primary := palette.Primary(school)

	s := radarSeries(school, tropes, song.Tropes.Vector(tropes))
	s.Color, s.FillColor, s.LineWidth = primary, Translucent(primary, 0.25), 4

	avg := radarSeries("Big Ten Avg", tropes, metrics.TropeMeans(ds.Songs(), tropes))
	avg.Color, avg.FillColor, avg.LineWidth = Neutral, "rgba(150, 150, 150, 0.25)", 3

	return radarChart(fmt.Sprintf("%s vs Big Ten Trope Identity", school), "", true, 520, s, avg), nil
}

// DualRadar overlays two schools' trope flags.
func DualRadar(ds *domain.Dataset, left, right string, palette Palette, tropes []domain.Trope) (Chart, error) {
	if left == right {
		return Chart{}, domain.ErrIdenticalSelection
	}
	l, err := ds.Lookup(left)
	if err != nil {
		return Chart{}, err
	}
	r, err := ds.Lookup(right)
	if err != nil {
		return Chart{}, err
	}
	tropes = orDefault(tropes)

	var series []Series
	for _, song := range []domain.Song{l, r} {
		c := palette.Primary(song.School)
		s := radarSeries(song.School, tropes, song.Tropes.Vector(tropes))
		s.Color, s.FillColor, s.LineWidth = c, Translucent(c, 0.25), 4
		series = append(series, s)
	}
	return radarChart(fmt.Sprintf("%s vs %s", left, right), "Trope Identity Comparison", true, 540, series...), nil
}

// radarSeries closes the loop by repeating the first category.
func radarSeries(name string, tropes []domain.Trope, values []float64) Series {
	pts := make([]Point, 0, len(tropes)+1)
	for i, t := range tropes {
		pts = append(pts, Point{Label: t.String(), Y: values[i]})
	}
	if len(pts) > 0 {
		pts = append(pts, pts[0])
	}
	return Series{Name: name, Points: pts}
}

func radarChart(title, subtitle string, legend bool, height int, series ...Series) Chart {
	var max float64
	for _, s := range series {
		for _, p := range s.Points {
			if p.Y > max {
				max = p.Y
			}
		}
	}
	return Chart{
		Kind:       KindRadar,
		Title:      title,
		Subtitle:   subtitle,
		YAxis:      Axis{Range: []float64{0, max * radarHeadroom}},
		Series:     series,
		ShowLegend: legend,
		Height:     height,
	}
}

func orDefault(tropes []domain.Trope) []domain.Trope {
	if len(tropes) == 0 {
		return domain.CanonicalTropes
	}
	return tropes
}
