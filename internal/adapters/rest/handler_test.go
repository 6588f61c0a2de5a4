package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/services"
)

// --- Mocks ---

type mockRepo struct {
	songs []domain.Song
}

func (m *mockRepo) LoadSongs(ctx context.Context) ([]domain.Song, error) {
	return m.songs, nil
}

type mockTracks struct {
	err error
}

func (m *mockTracks) GetTrack(ctx context.Context, id string) (domain.Track, error) {
	if m.err != nil {
		return domain.Track{}, m.err
	}
	return domain.Track{ID: id, Title: "Fight On", Artist: "Band", EmbedURL: "https://embed/" + id}, nil
}

func song(school string, tempo, duration float64, year int, trackID string, tropes ...domain.Trope) domain.Song {
	s := domain.Song{School: school, Conference: "Big Ten", Tempo: tempo, Duration: duration, Year: year, AudioTrackID: trackID}
	for _, t := range tropes {
		s.Tropes = s.Tropes.With(t, true)
	}
	return s
}

func newTestHandler(t *testing.T, load bool, tracks *mockTracks) *Handler {
	t.Helper()
	repo := &mockRepo{songs: []domain.Song{
		song("Alpha State", 120, 60, 1900, "trk-a", domain.TropeFight, domain.TropeVictory),
		song("Beta", 100, 90, 1950, "", domain.TropeFight),
		song("Gamma", 140, 120, 2000, "", domain.TropeFight, domain.TropeVictory, domain.TropeRah, domain.TropeSpelling),
	}}
	if tracks == nil {
		tracks = &mockTracks{}
	}
	svc := services.NewDashboard(repo, tracks, services.Settings{
		Palette: charts.NewPalette(map[string]charts.SchoolColors{"Alpha State": {Primary: "#00274C", Secondary: "#FFCB05"}}),
	})
	if load {
		if err := svc.Load(context.Background()); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	return NewHandler(svc)
}

// --- Tests ---

func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		trackErr       error
		expectedStatus int
		expectedBody   string
	}{
		{"health", "/health", nil, http.StatusOK, `"status":"ok"`},
		{"summary", "/summary", nil, http.StatusOK, `"mean_tempo":120`},
		{"rankings", "/rankings", nil, http.StatusOK, `"most_unique":{"school":"Gamma"`},
		{"rank table default order", "/rankings/bpm", nil, http.StatusOK, `"rows":[{"rank":1,"school":"Gamma"`},
		{"rank table asc", "/rankings/tempo?order=asc", nil, http.StatusOK, `"rows":[{"rank":1,"school":"Beta"`},
		{"rank table year oldest first", "/rankings/year", nil, http.StatusOK, `"rows":[{"rank":1,"school":"Alpha State"`},
		{"rank table bad order", "/rankings/tempo?order=up", nil, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"rank table unknown metric", "/rankings/loudness", nil, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"schools", "/schools", nil, http.StatusOK, `["Alpha State","Beta","Gamma"]`},
		{"school", "/schools/Alpha%20State", nil, http.StatusOK, `"tropes":["victory","fight"]`},
		{"school not found", "/schools/Omega", nil, http.StatusNotFound, "SCHOOL_NOT_FOUND"},
		{"profile", "/schools/Beta/profile", nil, http.StatusOK, `"conference_mean":120`},
		{"track", "/schools/Alpha%20State/track", nil, http.StatusOK, `"embed_url":"https://embed/trk-a"`},
		{"track missing id", "/schools/Beta/track", nil, http.StatusNotFound, "NO_TRACK"},
		{"track provider error", "/schools/Alpha%20State/track", errors.New("spotify down"), http.StatusInternalServerError, "service: failed to fetch track"},
		{"compare", "/compare?left=Alpha%20State&right=Gamma", nil, http.StatusOK, `"winner":"RIGHT"`},
		{"compare identical", "/compare?left=Beta&right=Beta", nil, http.StatusUnprocessableEntity, "IDENTICAL_SELECTION"},
		{"compare missing", "/compare?left=Beta", nil, http.StatusBadRequest, "left and right are required"},
		{"radar conference", "/charts/radar", nil, http.StatusOK, `"kind":"radar"`},
		{"radar dual", "/charts/radar?school=Beta&school=Gamma", nil, http.StatusOK, `"title":"Beta vs Gamma"`},
		{"heatmap", "/charts/heatmap", nil, http.StatusOK, `"rows":["Alpha State","Beta","Gamma"]`},
		{"scatter", "/charts/scatter?school=Beta", nil, http.StatusOK, `"name":"Other Schools"`},
		{"rank chart", "/charts/rank/tempo?school=Alpha%20State", nil, http.StatusOK, `"title":"Ranked 2 of 3"`},
		{"rank chart unknown view", "/charts/rank/volume", nil, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"rank chart too many", "/charts/rank/tempo?school=Beta&school=Gamma&school=Alpha%20State", nil, http.StatusBadRequest, "at most two"},
		{"dictionary", "/dictionary", nil, http.StatusOK, `"variable":"school"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, true, &mockTracks{err: tt.trackErr})
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d, body: %s", tt.expectedStatus, rec.Code, strings.TrimSpace(rec.Body.String()))
			}
			if tt.expectedBody != "" && !strings.Contains(rec.Body.String(), tt.expectedBody) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_NotLoaded(t *testing.T) {
	h := newTestHandler(t, false, nil)

	for _, path := range []string{"/summary", "/schools", "/charts/heatmap"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", path, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "empty" {
		t.Errorf("expected empty status before load, got %v", body)
	}
}

func TestHandler_PNG(t *testing.T) {
	h := newTestHandler(t, true, nil)

	for _, path := range []string{"/charts/rank/year.png?school=Beta", "/charts/scatter.png"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("%s: expected image/png, got %q", path, ct)
		}
		if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
			t.Errorf("%s: body is not a PNG", path)
		}
	}
}

func TestHandler_Export(t *testing.T) {
	h := newTestHandler(t, true, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export.xlsx", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Errorf("body is not an xlsx archive")
	}
}
