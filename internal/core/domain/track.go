package domain

// Track is the streaming-service metadata behind a song's AudioTrackID.
type Track struct {
	ID         string
	Title      string
	Artist     string
	Album      string // optional
	DurationMs int
	CoverURL   string
	PreviewURL string
	EmbedURL   string
}
