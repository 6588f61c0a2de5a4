// Package export writes the dataset and its derived tables to an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/metrics"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/services"
)

const (
	SheetSongs          = "Songs"
	SheetSummary        = "Summary"
	SheetRankings       = "Rankings"
	SheetTraditionalism = "Traditionalism"
	SheetDictionary     = "Dictionary"
)

// RankSheet is one rank view's table.
type RankSheet struct {
	View  charts.RankView
	Table metrics.RankTable
}

// Report is everything the workbook contains.
type Report struct {
	Snapshot       string
	Tropes         []domain.Trope
	Songs          []domain.Song
	Summary        metrics.Summary
	Extremes       metrics.Extremes
	Rankings       []RankSheet
	Traditionalism metrics.Traditionalism
	Dictionary     []domain.VariableGroup
}

// FromDashboard collects a report from a loaded dashboard.
func FromDashboard(d *services.Dashboard, tropes []domain.Trope) (Report, error) {
	if len(tropes) == 0 {
		tropes = domain.CanonicalTropes
	}
	r := Report{Tropes: tropes, Dictionary: d.Dictionary()}

	var err error
	if r.Snapshot, err = d.Snapshot(); err != nil {
		return Report{}, err
	}
	if r.Songs, err = d.Songs(); err != nil {
		return Report{}, err
	}
	if r.Summary, err = d.Summary(); err != nil {
		return Report{}, err
	}
	rk, err := d.Rankings()
	if err != nil {
		return Report{}, err
	}
	r.Extremes, r.Traditionalism = rk.Extremes, rk.Traditionalism

	for _, v := range d.RankViews() {
		t, err := d.RankTable(v.Metric, v.Ascending)
		if err != nil {
			return Report{}, err
		}
		r.Rankings = append(r.Rankings, RankSheet{View: v, Table: t})
	}
	return r, nil
}

type sheetWriter struct {
	f     *excelize.File
	sheet string
	bold  int
	row   int
	err   error
}

func (s *sheetWriter) line(bold bool, values ...any) {
	if s.err != nil {
		return
	}
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetSheetRow(s.sheet, cell, &values); err != nil {
		s.err = err
		return
	}
	if bold && len(values) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(values), s.row)
		s.err = s.f.SetCellStyle(s.sheet, cell, last, s.bold)
	}
}

func (s *sheetWriter) blank() {
	s.row++
}

func (s *sheetWriter) widths(width float64, cols int) {
	if s.err != nil || cols == 0 {
		return
	}
	last, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetColWidth(s.sheet, "A", last, width)
}

// Build lays the report out over five sheets.
func Build(r Report) (*excelize.File, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("export: style: %w", err)
	}
	if err := f.SetSheetName("Sheet1", SheetSongs); err != nil {
		f.Close()
		return nil, fmt.Errorf("export: %w", err)
	}
	for _, name := range []string{SheetSummary, SheetRankings, SheetTraditionalism, SheetDictionary} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("export: sheet %s: %w", name, err)
		}
	}

	writers := []func(*sheetWriter, Report){writeSongs, writeSummary, writeRankings, writeTraditionalism, writeDictionary}
	sheets := []string{SheetSongs, SheetSummary, SheetRankings, SheetTraditionalism, SheetDictionary}
	for i, write := range writers {
		sw := &sheetWriter{f: f, sheet: sheets[i], bold: bold}
		write(sw, r)
		if sw.err != nil {
			f.Close()
			return nil, fmt.Errorf("export: sheet %s: %w", sheets[i], sw.err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, r Report) error {
	f, err := Build(r)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

func writeSongs(s *sheetWriter, r Report) {
	header := []any{"school", "conference", "song_name", "writers", "year",
		"student_writer", "official_song", "contest", "bpm", "sec_duration", "number_fights"}
	for _, t := range r.Tropes {
		header = append(header, t.String())
	}
	header = append(header, "trope_count", "spotify_id")
	s.line(true, header...)

	for _, song := range r.Songs {
		row := []any{song.School, song.Conference, song.SongName, song.Writers, song.Year,
			song.StudentWriter, song.OfficialSong, song.ContestChosen,
			song.Tempo, song.Duration, song.FightMentions}
		for _, t := range r.Tropes {
			row = append(row, song.Tropes.Has(t))
		}
		row = append(row, song.TropeCount(), song.AudioTrackID)
		s.line(false, row...)
	}
	s.widths(16, len(header))
}

func writeSummary(s *sheetWriter, r Report) {
	sum := r.Summary
	s.line(true, "Metric", "Value")
	s.line(false, "Snapshot", r.Snapshot)
	s.line(false, "Songs", sum.Count)
	s.line(false, "Average BPM", metrics.Round(sum.MeanTempo, 2))
	s.line(false, "Average Duration (seconds)", metrics.Round(sum.MeanDuration, 2))
	s.line(false, "Average Trope Count", metrics.Round(sum.MeanTropeCount, 2))
	s.line(false, `Average Number of "Fights"`, metrics.Round(sum.MeanFightMentions, 2))
	s.line(false, "Average Year Written", int(sum.MeanYear))
	s.line(false, "Most Common Trope", sum.MostCommonTrope.String())
	s.line(false, "Oldest Song", sum.OldestYear)
	s.line(false, "Newest Song", sum.NewestYear)

	s.blank()
	s.line(true, "Extreme", "School", "Value")
	e := r.Extremes
	s.line(false, "Fastest", e.Fastest.School, e.Fastest.Value)
	s.line(false, "Longest", e.Longest.School, e.Longest.Value)
	s.line(false, "Oldest", e.Oldest.School, e.Oldest.Value)
	s.line(false, "Most Tropes", e.MostTropes.School, e.MostTropes.Value)
	s.widths(28, 3)
}

func writeRankings(s *sheetWriter, r Report) {
	for i, rs := range r.Rankings {
		if i > 0 {
			s.blank()
		}
		s.line(true, rs.View.Name)
		s.line(true, "Rank", "School", rs.View.Label)
		for _, row := range rs.Table.Rows {
			s.line(false, row.Rank, row.School, row.Value)
		}
	}
	s.widths(20, 3)
}

func writeTraditionalism(s *sheetWriter, r Report) {
	t := r.Traditionalism
	s.line(false, "Most Traditional", t.MostTraditional.School, metrics.Round(t.MostTraditional.Distance, 3))
	s.line(false, "Most Unique", t.MostUnique.School, metrics.Round(t.MostUnique.Distance, 3))
	s.blank()
	s.line(true, "School", "Distance from Conference Mean")
	for _, d := range t.Distances {
		s.line(false, d.School, metrics.Round(d.Distance, 3))
	}
	s.widths(30, 3)
}

func writeDictionary(s *sheetWriter, r Report) {
	for i, g := range r.Dictionary {
		if i > 0 {
			s.blank()
		}
		s.line(true, g.Title)
		s.line(true, "Variable", "Description", "Type", "Source")
		for _, v := range g.Variables {
			s.line(false, v.Name, v.Description, v.Type, v.Source)
		}
	}
	s.widths(24, 4)
}
