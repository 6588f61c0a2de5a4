package domain

import (
	"fmt"
	"strings"
)

// Trope is a lyrical motif recorded as present or absent in a song.
type Trope int

const (
	TropeSpelling Trope = iota
	TropeOpponents
	TropeMen
	TropeColors
	TropeNonsense
	TropeRah
	TropeWinWon
	TropeVictory
	TropeFight

	tropeCount
)

var tropeNames = [tropeCount]string{
	"spelling", "opponents", "men", "colors", "nonsense",
	"rah", "win_won", "victory", "fight",
}

// CanonicalTropes is the default ordering used for summaries, radar axes and
// tie-breaks. Callers may supply their own order.
var CanonicalTropes = []Trope{
	TropeSpelling, TropeOpponents, TropeMen, TropeColors, TropeNonsense,
	TropeRah, TropeWinWon, TropeVictory, TropeFight,
}

func (t Trope) String() string {
	if t < 0 || t >= tropeCount {
		return fmt.Sprintf("trope(%d)", int(t))
	}
	return tropeNames[t]
}

// MarshalText encodes the trope by its column name.
func (t Trope) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseTrope maps a column name such as "win_won" to its Trope.
func ParseTrope(name string) (Trope, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, tn := range tropeNames {
		if tn == n {
			return Trope(i), nil
		}
	}
	return 0, fmt.Errorf("domain: unknown trope %q", name)
}

// ParseTropes parses an ordered list and rejects duplicates.
func ParseTropes(names []string) ([]Trope, error) {
	out := make([]Trope, 0, len(names))
	seen := make(map[Trope]bool, len(names))
	for _, name := range names {
		t, err := ParseTrope(name)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			return nil, fmt.Errorf("domain: trope %q listed twice", name)
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

// TropeSet holds the nine binary trope flags of a song.
type TropeSet [tropeCount]bool

// Has reports whether the trope is present.
func (s TropeSet) Has(t Trope) bool {
	if t < 0 || t >= tropeCount {
		return false
	}
	return s[t]
}

// With returns a copy of s with t set to present.
func (s TropeSet) With(t Trope, present bool) TropeSet {
	if t >= 0 && t < tropeCount {
		s[t] = present
	}
	return s
}

// Count is the number of tropes present.
func (s TropeSet) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Vector returns the flags as 0/1 values in the given order.
func (s TropeSet) Vector(order []Trope) []float64 {
	v := make([]float64, len(order))
	for i, t := range order {
		if s.Has(t) {
			v[i] = 1
		}
	}
	return v
}
