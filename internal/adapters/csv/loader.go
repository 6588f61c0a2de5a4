// Package csv reads the cleaned fight songs table.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("csv: missing column")

var _ ports.SongRepository = (*Loader)(nil)

// Loader reads songs from a CSV file on every LoadSongs call.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) LoadSongs(ctx context.Context) ([]domain.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", l.path, err)
	}
	defer f.Close()

	songs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", l.path, err)
	}
	return songs, nil
}

var required = []string{"school", "year", "bpm", "sec_duration"}

// Parse reads a header row then one song per line. Columns are matched by
// name, so order and extra columns do not matter. A trope_count column, when
// present, must agree with the flags.
func Parse(r io.Reader) ([]domain.Song, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var songs []domain.Song
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		songs = append(songs, s)
	}
	return songs, nil
}

type rowReader struct {
	row []string
	idx map[string]int
	err error
}

func (r *rowReader) str(col string) string {
	i, ok := r.idx[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r *rowReader) float(col string) float64 {
	v := r.str(col)
	if r.err != nil || v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", col, err)
	}
	return f
}

func (r *rowReader) int(col string) int {
	v := r.str(col)
	if r.err != nil || v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", col, err)
	}
	return n
}

func (r *rowReader) flag(col string) bool {
	v := strings.ToLower(r.str(col))
	if r.err != nil {
		return false
	}
	switch v {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n", "":
		return false
	}
	r.err = fmt.Errorf("%s: invalid flag %q", col, v)
	return false
}

func parseRow(row []string, idx map[string]int) (domain.Song, error) {
	r := &rowReader{row: row, idx: idx}
	s := domain.Song{
		School:        r.str("school"),
		Conference:    r.str("conference"),
		SongName:      r.str("song_name"),
		Writers:       r.str("writers"),
		Year:          r.int("year"),
		StudentWriter: r.flag("student_writer"),
		OfficialSong:  r.flag("official_song"),
		ContestChosen: r.flag("contest"),
		Tempo:         r.float("bpm"),
		Duration:      r.float("sec_duration"),
		FightMentions: r.int("number_fights"),
		AudioTrackID:  r.str("spotify_id"),
	}
	for _, t := range domain.CanonicalTropes {
		s.Tropes = s.Tropes.With(t, r.flag(t.String()))
	}
	if r.err != nil {
		return domain.Song{}, fmt.Errorf("%s: %w", s.School, r.err)
	}

	if _, ok := idx["trope_count"]; ok {
		if n := r.int("trope_count"); r.err == nil && n != s.TropeCount() {
			return domain.Song{}, fmt.Errorf("%w: %s: trope_count %d does not match %d flags",
				domain.ErrInvalidSong, s.School, n, s.TropeCount())
		}
	}
	if _, ok := idx["victory_win_won"]; ok && r.flag("victory_win_won") != s.VictoryWinWon() {
		log.Printf("WARN csv: %s: victory_win_won disagrees with victory/win_won flags; using the flags", s.School)
	}
	if r.err != nil {
		return domain.Song{}, fmt.Errorf("%s: %w", s.School, r.err)
	}

	if err := s.Validate(); err != nil {
		return domain.Song{}, err
	}
	return s, nil
}
