package metrics

import (
	"sort"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// Ranked is one row of a rank table.
type Ranked struct {
	Rank   int         `json:"rank"`
	School string      `json:"school"`
	Value  float64     `json:"value"`
	Song   domain.Song `json:"-"`
}

// RankTable orders every song by one metric. Ranks run 1..N without gaps.
type RankTable struct {
	Metric    domain.Metric `json:"metric"`
	Ascending bool          `json:"ascending"`
	Rows      []Ranked      `json:"rows"`
}

// NewRankTable sorts songs by metric. The direction is always the caller's
// choice; equal values keep alphabetical school order.
func NewRankTable(songs []domain.Song, m domain.Metric, ascending bool) (RankTable, error) {
	if len(songs) == 0 {
		return RankTable{}, domain.ErrEmptyDataset
	}

	rows := make([]Ranked, len(songs))
	for i, s := range songs {
		rows[i] = Ranked{School: s.School, Value: m.Value(s), Song: s}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			if ascending {
				return rows[i].Value < rows[j].Value
			}
			return rows[i].Value > rows[j].Value
		}
		return rows[i].School < rows[j].School
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return RankTable{Metric: m, Ascending: ascending, Rows: rows}, nil
}

// Len is the number of ranked songs.
func (t RankTable) Len() int {
	return len(t.Rows)
}

// Row returns the ranked entry for a school.
func (t RankTable) Row(school string) (Ranked, error) {
	for _, r := range t.Rows {
		if r.School == school {
			return r, nil
		}
	}
	return Ranked{}, domain.SchoolNotFoundError{School: school}
}

// RankOf returns the school's 1-based position and the table size.
func (t RankTable) RankOf(school string) (rank, total int, err error) {
	r, err := t.Row(school)
	if err != nil {
		return 0, 0, err
	}
	return r.Rank, t.Len(), nil
}

// InvertedRank maps a position onto the opposite end of the table
// (N+1-rank), used when the display counts from the far end of the axis.
func (t RankTable) InvertedRank(rank int) int {
	return t.Len() + 1 - rank
}

// Mean is the average of the ranked metric.
func (t RankTable) Mean() float64 {
	if len(t.Rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range t.Rows {
		sum += r.Value
	}
	return sum / float64(len(t.Rows))
}
