package rest

import (
	"net/http"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/metrics"
)

type songResponse struct {
	School        string         `json:"school"`
	Conference    string         `json:"conference"`
	SongName      string         `json:"song_name"`
	Writers       string         `json:"writers,omitempty"`
	Year          int            `json:"year"`
	StudentWriter bool           `json:"student_writer"`
	OfficialSong  bool           `json:"official_song"`
	ContestChosen bool           `json:"contest"`
	Tempo         float64        `json:"bpm"`
	Duration      float64        `json:"sec_duration"`
	FightMentions int            `json:"number_fights"`
	Tropes        []domain.Trope `json:"tropes"`
	TropeCount    int            `json:"trope_count"`
	VictoryWinWon bool           `json:"victory_win_won"`
	AudioTrackID  string         `json:"spotify_id,omitempty"`
}

func toSongResponse(s domain.Song) songResponse {
	resp := songResponse{
		School:        s.School,
		Conference:    s.Conference,
		SongName:      s.SongName,
		Writers:       s.Writers,
		Year:          s.Year,
		StudentWriter: s.StudentWriter,
		OfficialSong:  s.OfficialSong,
		ContestChosen: s.ContestChosen,
		Tempo:         s.Tempo,
		Duration:      s.Duration,
		FightMentions: s.FightMentions,
		Tropes:        []domain.Trope{},
		TropeCount:    s.TropeCount(),
		VictoryWinWon: s.VictoryWinWon(),
		AudioTrackID:  s.AudioTrackID,
	}
	for _, t := range domain.CanonicalTropes {
		if s.Tropes.Has(t) {
			resp.Tropes = append(resp.Tropes, t)
		}
	}
	return resp
}

type profileResponse struct {
	Song songResponse `json:"song"`
	metrics.SchoolProfile
}

type trackResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album,omitempty"`
	DurationMs int    `json:"duration_ms"`
	CoverURL   string `json:"cover_url,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
	EmbedURL   string `json:"embed_url"`
}

// ListSchools handles GET /schools
func (h *Handler) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.svc.Schools()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"schools": schools})
}

// GetSchool handles GET /schools/{school}
func (h *Handler) GetSchool(w http.ResponseWriter, r *http.Request) {
	song, err := h.svc.Song(r.PathValue("school"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSongResponse(song))
}

// GetProfile handles GET /schools/{school}/profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Profile(r.PathValue("school"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{Song: toSongResponse(p.Song), SchoolProfile: p})
}

// GetTrack handles GET /schools/{school}/track
func (h *Handler) GetTrack(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Track(r.Context(), r.PathValue("school"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trackResponse{
		ID:         t.ID,
		Title:      t.Title,
		Artist:     t.Artist,
		Album:      t.Album,
		DurationMs: t.DurationMs,
		CoverURL:   t.CoverURL,
		PreviewURL: t.PreviewURL,
		EmbedURL:   t.EmbedURL,
	})
}

// Compare handles GET /compare?left=&right=
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	left, right := r.URL.Query().Get("left"), r.URL.Query().Get("right")
	if left == "" || right == "" {
		writeErrorWithCode(w, http.StatusBadRequest, "left and right are required", errCodeInvalidArgument)
		return
	}
	c, err := h.svc.Compare(left, right)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
