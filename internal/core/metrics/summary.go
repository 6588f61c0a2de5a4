package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// Summary is the conference-wide aggregate shown on the summary cards.
type Summary struct {
	Count             int          `json:"count"`
	MeanTempo         float64      `json:"mean_tempo"`
	MeanDuration      float64      `json:"mean_duration"`
	MeanTropeCount    float64      `json:"mean_trope_count"`
	MeanFightMentions float64      `json:"mean_fight_mentions"`
	MeanYear          float64      `json:"mean_year"`
	MostCommonTrope   domain.Trope `json:"most_common_trope"`
	OldestYear        int          `json:"oldest_year"`
	NewestYear        int          `json:"newest_year"`
}

// ConferenceSummary averages every tracked metric. The most common trope is
// the one with the highest count; ties go to the earliest trope in order.
// An empty order falls back to domain.CanonicalTropes.
func ConferenceSummary(songs []domain.Song, order []domain.Trope) (Summary, error) {
	if len(songs) == 0 {
		return Summary{}, domain.ErrEmptyDataset
	}
	if len(order) == 0 {
		order = domain.CanonicalTropes
	}

	sums := make([]float64, len(order))
	for _, s := range songs {
		floats.Add(sums, s.Tropes.Vector(order))
	}

	years := Column(songs, domain.MetricYear)
	return Summary{
		Count:             len(songs),
		MeanTempo:         Mean(songs, domain.MetricTempo),
		MeanDuration:      Mean(songs, domain.MetricDuration),
		MeanTropeCount:    Mean(songs, domain.MetricTropeCount),
		MeanFightMentions: Mean(songs, domain.MetricFightMentions),
		MeanYear:          stat.Mean(years, nil),
		MostCommonTrope:   order[floats.MaxIdx(sums)],
		OldestYear:        int(floats.Min(years)),
		NewestYear:        int(floats.Max(years)),
	}, nil
}

// Column extracts one metric from every song, in input order.
func Column(songs []domain.Song, m domain.Metric) []float64 {
	out := make([]float64, len(songs))
	for i, s := range songs {
		out[i] = m.Value(s)
	}
	return out
}

// Mean is the arithmetic mean of a metric. It returns 0 for no songs.
func Mean(songs []domain.Song, m domain.Metric) float64 {
	if len(songs) == 0 {
		return 0
	}
	return stat.Mean(Column(songs, m), nil)
}

// TropeMeans returns the share of songs using each trope, in order.
func TropeMeans(songs []domain.Song, order []domain.Trope) []float64 {
	means := make([]float64, len(order))
	if len(songs) == 0 {
		return means
	}
	for _, s := range songs {
		floats.Add(means, s.Tropes.Vector(order))
	}
	floats.Scale(1/float64(len(songs)), means)
	return means
}

// Leader names the school holding an extreme value.
type Leader struct {
	School string  `json:"school"`
	Value  float64 `json:"value"`
}

// Extremes are the headline "rankings and extremes" cards.
type Extremes struct {
	Fastest    Leader `json:"fastest"`
	Longest    Leader `json:"longest"`
	Oldest     Leader `json:"oldest"`
	MostTropes Leader `json:"most_tropes"`
}

// ConferenceExtremes finds the fastest, longest, oldest and most trope-heavy
// songs. The first song in input order wins a tie.
func ConferenceExtremes(songs []domain.Song) (Extremes, error) {
	if len(songs) == 0 {
		return Extremes{}, domain.ErrEmptyDataset
	}
	return Extremes{
		Fastest:    extreme(songs, domain.MetricTempo, true),
		Longest:    extreme(songs, domain.MetricDuration, true),
		Oldest:     extreme(songs, domain.MetricYear, false),
		MostTropes: extreme(songs, domain.MetricTropeCount, true),
	}, nil
}

func extreme(songs []domain.Song, m domain.Metric, max bool) Leader {
	best := Leader{School: songs[0].School, Value: m.Value(songs[0])}
	for _, s := range songs[1:] {
		v := m.Value(s)
		if (max && v > best.Value) || (!max && v < best.Value) {
			best = Leader{School: s.School, Value: v}
		}
	}
	return best
}
