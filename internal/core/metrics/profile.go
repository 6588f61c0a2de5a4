package metrics

import (
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// MetricProfile compares a school's value with the conference mean.
type MetricProfile struct {
	Metric         domain.Metric `json:"metric"`
	Value          float64       `json:"value"`
	ConferenceMean float64       `json:"conference_mean"`
	Delta          Delta         `json:"delta"`
	Percent        float64       `json:"percent"`
	PercentOK      bool          `json:"percent_ok"`
}

// SchoolProfile is everything the profile page shows about one song.
type SchoolProfile struct {
	Song     domain.Song     `json:"-"`
	Metrics  []MetricProfile `json:"metrics"`
	Distance float64         `json:"traditionalism_distance"`
}

// Profile measures a school against the conference averages.
func Profile(ds *domain.Dataset, school string, tropes []domain.Trope) (SchoolProfile, error) {
	song, err := ds.Lookup(school)
	if err != nil {
		return SchoolProfile{}, err
	}
	songs := ds.Songs()

	trad, err := TraditionalismRanking(songs, tropes)
	if err != nil {
		return SchoolProfile{}, err
	}
	dist, err := trad.DistanceOf(school)
	if err != nil {
		return SchoolProfile{}, err
	}

	p := SchoolProfile{Song: song, Distance: dist}
	for _, m := range domain.TrackedMetrics {
		v, mean := m.Value(song), Mean(songs, m)
		mp := MetricProfile{Metric: m, Value: v, ConferenceMean: mean, Delta: DeltaOf(v, mean)}
		if pct, err := PercentDelta(v, mean); err == nil {
			mp.Percent, mp.PercentOK = pct, true
		}
		p.Metrics = append(p.Metrics, mp)
	}
	return p, nil
}

// Metric returns the profile row for m.
func (p SchoolProfile) Metric(m domain.Metric) (MetricProfile, bool) {
	for _, mp := range p.Metrics {
		if mp.Metric == m {
			return mp, true
		}
	}
	return MetricProfile{}, false
}
