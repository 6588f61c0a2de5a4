package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// ErrTrackNotFound is returned when Spotify has no track for the id.
var ErrTrackNotFound = errors.New("spotify adapter: track not found")

type spotifyArtist struct {
	Name string `json:"name"`
}

type spotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type spotifyAlbum struct {
	Name   string         `json:"name"`
	Images []spotifyImage `json:"images"`
}

// spotifyTrack is the subset of the /tracks/{id} response we read.
type spotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	DurationMs int             `json:"duration_ms"`
	PreviewURL string          `json:"preview_url"`
	Artists    []spotifyArtist `json:"artists"`
	Album      spotifyAlbum    `json:"album"`
}

// GetTrack fetches track metadata by Spotify id.
func (c *Client) GetTrack(ctx context.Context, id string) (domain.Track, error) {
	if id == "" {
		return domain.Track{}, fmt.Errorf("spotify adapter: empty track id")
	}

	endpoint := fmt.Sprintf("%s/tracks/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: failed to create track request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: track request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		return domain.Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	default:
		return domain.Track{}, fmt.Errorf("spotify adapter: track status %d", resp.StatusCode)
	}

	var tr spotifyTrack
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return domain.Track{}, fmt.Errorf("spotify adapter: track decode error: %w", err)
	}

	return mapTrackToDomain(tr), nil
}
