package charts

import (
	"sort"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// TropeHeatmap shows trope presence per school, schools in alphabetical order.
func TropeHeatmap(songs []domain.Song, tropes []domain.Trope) (Chart, error) {
	if len(songs) == 0 {
		return Chart{}, domain.ErrEmptyDataset
	}
	tropes = orDefault(tropes)

	sorted := make([]domain.Song, len(songs))
	copy(sorted, songs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].School < sorted[j].School })

	hm := &Heatmap{
		Columns: make([]string, len(tropes)),
		Scale:   []string{HeatmapLow, HeatmapHigh},
	}
	for i, t := range tropes {
		hm.Columns[i] = t.String()
	}
	for _, s := range sorted {
		hm.Rows = append(hm.Rows, s.School)
		hm.Values = append(hm.Values, s.Tropes.Vector(tropes))
	}

	return Chart{
		Kind:    KindHeatmap,
		Title:   "Trope Heatmap",
		XAxis:   Axis{Title: "Lyrical Trope"},
		YAxis:   Axis{Title: "School"},
		Heatmap: hm,
		Height:  600,
	}, nil
}
