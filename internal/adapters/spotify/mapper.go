package spotify

import (
	"fmt"
	"strings"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// mapTrackToDomain flattens artists and picks the largest cover image.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	names := make([]string, 0, len(st.Artists))
	for _, a := range st.Artists {
		names = append(names, a.Name)
	}

	var cover string
	var best int
	for _, img := range st.Album.Images {
		if area := img.Width * img.Height; cover == "" || area > best {
			cover, best = img.URL, area
		}
	}

	return domain.Track{
		ID:         st.ID,
		Title:      st.Name,
		Artist:     strings.Join(names, ", "),
		Album:      st.Album.Name,
		DurationMs: st.DurationMs,
		CoverURL:   cover,
		PreviewURL: st.PreviewURL,
		EmbedURL:   fmt.Sprintf(embedURLFormat, st.ID),
	}
}
