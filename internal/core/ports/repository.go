package ports

import (
	"context"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// SongRepository loads the fight song records the dashboard serves.
type SongRepository interface {
	LoadSongs(ctx context.Context) ([]domain.Song, error)
}

// SongStore is a repository that can also be written, used by the importer.
type SongStore interface {
	SongRepository
	SaveSongs(ctx context.Context, songs []domain.Song) (importID string, err error)
}
