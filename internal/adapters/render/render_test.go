package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func songs() []domain.Song {
	mk := func(school string, tempo, duration float64, year int) domain.Song {
		s := domain.Song{School: school, Tempo: tempo, Duration: duration, Year: year}
		s.Tropes = s.Tropes.With(domain.TropeFight, true)
		return s
	}
	return []domain.Song{
		mk("A", 120, 60, 1900),
		mk("B", 100, 90, 1950),
		mk("C", 140, 120, 2000),
	}
}

func TestPNG(t *testing.T) {
	views := charts.DefaultRankViews()
	year, _ := views.Lookup("year")
	tempo, _ := views.Lookup("tempo")

	yearBars, err := charts.RankBars(songs(), year, "#FFCB05", charts.Highlight{School: "A", Color: "#00274C"})
	if err != nil {
		t.Fatalf("year bars: %v", err)
	}
	tempoBars, err := charts.RankBars(songs(), tempo, "grey",
		charts.Highlight{School: "A", Color: "#00274C"}, charts.Highlight{School: "B", Color: "#BB0000"})
	if err != nil {
		t.Fatalf("tempo bars: %v", err)
	}
	scatter, err := charts.TempoDuration(songs(), charts.NewPalette(nil), "C")
	if err != nil {
		t.Fatalf("scatter: %v", err)
	}

	tests := []struct {
		name  string
		chart charts.Chart
	}{
		{"year offset bars", yearBars},
		{"dual bars", tempoBars},
		{"scatter", scatter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PNG(&buf, tt.chart, 0); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
				t.Fatalf("output is not a PNG (%d bytes)", buf.Len())
			}
		})
	}
}

func TestPNG_Unsupported(t *testing.T) {
	radar, err := charts.ConferenceRadar(songs(), nil)
	if err != nil {
		t.Fatalf("radar: %v", err)
	}
	var buf bytes.Buffer
	if err := PNG(&buf, radar, 0); !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
}

func TestPlot_YearTicks(t *testing.T) {
	year, _ := charts.DefaultRankViews().Lookup("year")
	chart, err := charts.RankBars(songs(), year, "black")
	if err != nil {
		t.Fatalf("bars: %v", err)
	}
	p, err := Plot(chart)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	if p.Y.Min != 0 || p.Y.Max < 120 {
		t.Errorf("expected y range to cover the tick span, got [%v, %v]", p.Y.Min, p.Y.Max)
	}
}
