package metrics

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// Distance is one school's traditionalism distance.
type Distance struct {
	School   string  `json:"school"`
	Distance float64 `json:"distance"`
}

// Traditionalism ranks songs by how far their trope flags sit from the
// conference-mean trope vector.
type Traditionalism struct {
	Tropes          []domain.Trope `json:"tropes"`
	Mean            []float64      `json:"mean"`
	Distances       []Distance     `json:"distances"` // nearest first
	MostTraditional Distance       `json:"most_traditional"`
	MostUnique      Distance       `json:"most_unique"`
}

// TraditionalismRanking computes the Euclidean distance between each song's
// flag vector and the mean vector over the same tropes. Equal distances are
// ordered by school name, so both ends of the ranking are deterministic.
func TraditionalismRanking(songs []domain.Song, tropes []domain.Trope) (Traditionalism, error) {
	if len(songs) == 0 {
		return Traditionalism{}, domain.ErrEmptyDataset
	}
	if len(tropes) == 0 {
		tropes = domain.CanonicalTropes
	}

	mean := TropeMeans(songs, tropes)
	dists := make([]Distance, len(songs))
	for i, s := range songs {
		dists[i] = Distance{
			School:   s.School,
			Distance: floats.Distance(s.Tropes.Vector(tropes), mean, 2),
		}
	}
	sort.SliceStable(dists, func(i, j int) bool {
		if dists[i].Distance != dists[j].Distance {
			return dists[i].Distance < dists[j].Distance
		}
		return dists[i].School < dists[j].School
	})

	// first entry at the maximum distance is the alphabetical winner
	unique := dists[len(dists)-1]
	for _, d := range dists {
		if d.Distance == unique.Distance {
			unique = d
			break
		}
	}

	return Traditionalism{
		Tropes:          append([]domain.Trope(nil), tropes...),
		Mean:            mean,
		Distances:       dists,
		MostTraditional: dists[0],
		MostUnique:      unique,
	}, nil
}

// DistanceOf returns a school's distance from the ranking.
func (t Traditionalism) DistanceOf(school string) (float64, error) {
	for _, d := range t.Distances {
		if d.School == school {
			return d.Distance, nil
		}
	}
	return 0, domain.SchoolNotFoundError{School: school}
}
