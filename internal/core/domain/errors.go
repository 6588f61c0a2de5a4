package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDataset       = errors.New("domain: empty dataset")
	ErrNotFound           = errors.New("domain: not found")
	ErrIdenticalSelection = errors.New("domain: identical selection")
	ErrDivisionByZero     = errors.New("domain: division by zero")
	ErrDuplicateSchool    = errors.New("domain: duplicate school")
	ErrInvalidSong        = errors.New("domain: invalid song")
	ErrInvalidStep        = errors.New("domain: tick step must be positive")
	ErrUnknownMetric      = errors.New("domain: unknown metric")
)

// SchoolNotFoundError reports a school identifier missing from the dataset.
type SchoolNotFoundError struct {
	School string
}

func (e SchoolNotFoundError) Error() string {
	return fmt.Sprintf("domain: school %q not found", e.School)
}

func (e SchoolNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
