package domain

import (
	"fmt"
	"strings"
)

// Song is one school's fight song record.
type Song struct {
	School        string
	Conference    string
	SongName      string
	Writers       string
	Year          int
	StudentWriter bool
	OfficialSong  bool
	ContestChosen bool
	Tempo         float64 // beats per minute
	Duration      float64 // seconds
	FightMentions int
	Tropes        TropeSet
	AudioTrackID  string // Spotify track id
}

// TropeCount is derived from the trope flags.
func (s Song) TropeCount() int {
	return s.Tropes.Count()
}

// VictoryWinWon reports whether either victory or win/won phrasing is present.
func (s Song) VictoryWinWon() bool {
	return s.Tropes.Has(TropeVictory) || s.Tropes.Has(TropeWinWon)
}

// Validate checks the invariants a loaded record must satisfy.
func (s Song) Validate() error {
	switch {
	case strings.TrimSpace(s.School) == "":
		return fmt.Errorf("%w: school is required", ErrInvalidSong)
	case s.Tempo <= 0:
		return fmt.Errorf("%w: %s: tempo must be positive", ErrInvalidSong, s.School)
	case s.Duration <= 0:
		return fmt.Errorf("%w: %s: duration must be positive", ErrInvalidSong, s.School)
	case s.FightMentions < 0:
		return fmt.Errorf("%w: %s: fight mentions must not be negative", ErrInvalidSong, s.School)
	}
	return nil
}
