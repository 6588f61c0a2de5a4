package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
)

func song(school string, tempo, duration float64, year int, trackID string, tropes ...domain.Trope) domain.Song {
	s := domain.Song{School: school, Tempo: tempo, Duration: duration, Year: year, AudioTrackID: trackID}
	for _, t := range tropes {
		s.Tropes = s.Tropes.With(t, true)
	}
	return s
}

func fixture() []domain.Song {
	return []domain.Song{
		song("A", 120, 60, 1900, "trk-a", domain.TropeFight, domain.TropeVictory),
		song("B", 100, 90, 1950, "", domain.TropeFight),
		song("C", 140, 120, 2000, "trk-c", domain.TropeFight, domain.TropeVictory, domain.TropeRah, domain.TropeSpelling),
	}
}

func loaded(t *testing.T, tracks ports.TrackProvider) *Dashboard {
	t.Helper()
	d := NewDashboard(&mockRepo{songs: fixture()}, tracks, Settings{
		Palette: charts.NewPalette(map[string]charts.SchoolColors{
			"A": {Primary: "#111111", Secondary: "#222222"},
		}),
	})
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return d
}

func TestDashboard_Load(t *testing.T) {
	tests := []struct {
		name    string
		repo    mockRepo
		wantErr error
	}{
		{name: "Happy Path", repo: mockRepo{songs: fixture()}},
		{name: "Repository error", repo: mockRepo{err: errors.New("disk gone")}},
		{name: "Duplicate school", repo: mockRepo{songs: append(fixture(), song("A", 1, 1, 1, ""))}, wantErr: domain.ErrDuplicateSchool},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDashboard(&tc.repo, nil, Settings{})
			err := d.Load(context.Background())
			if tc.repo.err != nil {
				if !errors.Is(err, tc.repo.err) {
					t.Fatalf("expected repository error, got %v", err)
				}
				return
			}
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snap, err := d.Snapshot()
			if err != nil || snap == "" {
				t.Fatalf("expected a snapshot id, got %q (%v)", snap, err)
			}
		})
	}
}

func TestDashboard_ReadsBeforeLoad(t *testing.T) {
	d := NewDashboard(&mockRepo{}, nil, Settings{})
	if _, err := d.Summary(); !errors.Is(err, domain.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
	if _, err := d.RankChart("tempo", "A"); !errors.Is(err, domain.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestDashboard_Reload(t *testing.T) {
	repo := &mockRepo{songs: fixture()}
	d := NewDashboard(repo, nil, Settings{})
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	first, _ := d.Snapshot()

	repo.songs = fixture()[:2]
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	second, _ := d.Snapshot()
	if first == second {
		t.Fatalf("expected a new snapshot id after reload")
	}
	sum, err := d.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Count != 2 {
		t.Fatalf("expected 2 songs after reload, got %d", sum.Count)
	}
}

func TestDashboard_RankChart(t *testing.T) {
	d := loaded(t, nil)

	single, err := d.RankChart("tempo", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single.Guides[0].Color != "#222222" {
		t.Errorf("expected secondary colour guide, got %q", single.Guides[0].Color)
	}
	if single.Badges[0].Color != "#111111" {
		t.Errorf("expected primary colour badge, got %q", single.Badges[0].Color)
	}

	dual, err := d.RankChart("duration", "A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dual.Guides[0].Color != DualAverageColor {
		t.Errorf("expected grey guide, got %q", dual.Guides[0].Color)
	}

	if _, err := d.RankChart("volume", "A"); !errors.Is(err, charts.ErrUnknownView) {
		t.Fatalf("expected ErrUnknownView, got %v", err)
	}
	if _, err := d.RankChart("tempo", "A", "B", "C"); err == nil {
		t.Fatalf("expected error for three schools")
	}
}

func TestDashboard_Rankings(t *testing.T) {
	r, err := loaded(t, nil).Rankings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Extremes.Fastest.School != "C" || r.Extremes.Oldest.School != "A" {
		t.Errorf("unexpected extremes: %+v", r.Extremes)
	}
	if r.Traditionalism.MostUnique.School != "C" {
		t.Errorf("expected C to be most unique, got %s", r.Traditionalism.MostUnique.School)
	}
}

func TestDashboard_Track(t *testing.T) {
	tests := []struct {
		name    string
		school  string
		tracks  *mockTracks
		wantErr error
		wantID  string
	}{
		{name: "Happy Path", school: "A", tracks: &mockTracks{}, wantID: "trk-a"},
		{name: "No track id", school: "B", tracks: &mockTracks{}, wantErr: ports.ErrNoTrack},
		{name: "Unknown school", school: "Z", tracks: &mockTracks{}, wantErr: domain.ErrNotFound},
		{name: "Provider error", school: "C", tracks: &mockTracks{err: errors.New("spotify failure")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := loaded(t, tc.tracks)
			got, err := d.Track(context.Background(), tc.school)
			switch {
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			case tc.tracks.err != nil:
				if !errors.Is(err, tc.tracks.err) {
					t.Fatalf("expected provider error, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.ID != tc.wantID || tc.tracks.calledID != tc.wantID {
					t.Fatalf("expected track %s, got %s (called %s)", tc.wantID, got.ID, tc.tracks.calledID)
				}
			}
		})
	}
}

func TestDashboard_TrackCache(t *testing.T) {
	tracks := &mockTracks{}
	d := loaded(t, tracks)

	jobs := d.TrackJobs()
	if len(jobs) != 2 || jobs[0].School != "A" || jobs[1].TrackID != "trk-c" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}

	d.CacheTrack("C", domain.Track{ID: "cached", Title: "Prefetched"})
	got, err := d.Track(context.Background(), "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "cached" || tracks.calledID != "" {
		t.Errorf("expected cached track without a provider call, got %s (called %q)", got.ID, tracks.calledID)
	}
	if jobs := d.TrackJobs(); len(jobs) != 1 || jobs[0].School != "A" {
		t.Errorf("expected only A left to prefetch, got %+v", jobs)
	}

	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if jobs := d.TrackJobs(); len(jobs) != 2 {
		t.Errorf("reload should clear the cache, got %d jobs", len(jobs))
	}
	if d := loaded(t, nil); d.TrackJobs() != nil {
		t.Error("no provider means nothing to prefetch")
	}
}

// --- Mocks ---

type mockRepo struct {
	songs []domain.Song
	err   error
}

func (m *mockRepo) LoadSongs(ctx context.Context) ([]domain.Song, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.songs, nil
}

type mockTracks struct {
	err      error
	calledID string
}

func (m *mockTracks) GetTrack(ctx context.Context, id string) (domain.Track, error) {
	m.calledID = id
	if m.err != nil {
		return domain.Track{}, m.err
	}
	return domain.Track{ID: id, Title: "Fight Song"}, nil
}
