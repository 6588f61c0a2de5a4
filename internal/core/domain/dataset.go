package domain

import (
	"fmt"
	"sort"
)

// Dataset is the read-only set of songs for one session.
type Dataset struct {
	snapshot string
	songs    []Song
	index    map[string]int
}

// NewDataset validates the songs and freezes them into a Dataset.
// The input slice is copied.
func NewDataset(snapshot string, songs []Song) (*Dataset, error) {
	ds := &Dataset{
		snapshot: snapshot,
		songs:    make([]Song, len(songs)),
		index:    make(map[string]int, len(songs)),
	}
	for i, s := range songs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := ds.index[s.School]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSchool, s.School)
		}
		ds.index[s.School] = i
		ds.songs[i] = s
	}
	return ds, nil
}

// Snapshot identifies the load that produced this dataset.
func (d *Dataset) Snapshot() string {
	return d.snapshot
}

// Len returns the number of songs.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.songs)
}

// Songs returns a copy of the records in load order.
func (d *Dataset) Songs() []Song {
	if d == nil {
		return nil
	}
	out := make([]Song, len(d.songs))
	copy(out, d.songs)
	return out
}

// Lookup finds a school's song.
func (d *Dataset) Lookup(school string) (Song, error) {
	if d != nil {
		if i, ok := d.index[school]; ok {
			return d.songs[i], nil
		}
	}
	return Song{}, SchoolNotFoundError{School: school}
}

// Schools lists the school names alphabetically.
func (d *Dataset) Schools() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.songs))
	for _, s := range d.songs {
		out = append(out, s.School)
	}
	sort.Strings(out)
	return out
}
