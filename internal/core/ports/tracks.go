package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// ErrNoTrack indicates a school has no audio track configured.
var ErrNoTrack = errors.New("no audio track")

// NoTrackError names the school whose song has no track id.
type NoTrackError struct {
	School string
}

func (e NoTrackError) Error() string {
	if e.School == "" {
		return ErrNoTrack.Error()
	}
	return fmt.Sprintf("no audio track configured for %q", e.School)
}

func (e NoTrackError) Is(target error) bool {
	return target == ErrNoTrack
}

// TrackProvider resolves audio track metadata for embedding.
type TrackProvider interface {
	GetTrack(ctx context.Context, id string) (domain.Track, error)
}
