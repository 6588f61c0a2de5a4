package metrics

import (
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

const (
	DefaultYearMargin = 10
	DefaultTickStep   = 10
)

// Tick is an axis position labelled with the original year.
type Tick struct {
	Value float64 `json:"value"`
	Year  int     `json:"year"`
}

// YearAxis positions years as offsets from Base = min year - margin, which
// keeps bar heights positive while ticks still read as calendar years.
type YearAxis struct {
	Base    int                `json:"base"`
	MinYear int                `json:"min_year"`
	MaxYear int                `json:"max_year"`
	Margin  int                `json:"margin"`
	Offsets map[string]float64 `json:"offsets"`
}

// YearOffset builds the offset table for every song.
func YearOffset(songs []domain.Song, margin int) (YearAxis, error) {
	if len(songs) == 0 {
		return YearAxis{}, domain.ErrEmptyDataset
	}

	minYear, maxYear := songs[0].Year, songs[0].Year
	for _, s := range songs[1:] {
		if s.Year < minYear {
			minYear = s.Year
		}
		if s.Year > maxYear {
			maxYear = s.Year
		}
	}

	axis := YearAxis{
		Base:    minYear - margin,
		MinYear: minYear,
		MaxYear: maxYear,
		Margin:  margin,
		Offsets: make(map[string]float64, len(songs)),
	}
	for _, s := range songs {
		axis.Offsets[s.School] = axis.Offset(s.Year)
	}
	return axis, nil
}

// Offset converts a calendar year to its axis value.
func (a YearAxis) Offset(year int) float64 {
	return float64(year - a.Base)
}

// Ticks spans [min-margin, max+margin] at step, inclusive of the lower bound.
func (a YearAxis) Ticks(step int) ([]Tick, error) {
	if step <= 0 {
		return nil, domain.ErrInvalidStep
	}
	var ticks []Tick
	for y := a.Base; y <= a.MaxYear+a.Margin; y += step {
		ticks = append(ticks, Tick{Value: a.Offset(y), Year: y})
	}
	return ticks, nil
}
