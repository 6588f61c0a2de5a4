package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/services"
)

func TestPool_CachesFetchedTracks(t *testing.T) {
	provider := &mockProvider{tracks: map[string]domain.Track{
		"t1": {ID: "t1", Title: "Victors"},
		"t2": {ID: "t2", Title: "On Wisconsin"},
	}}
	sink := &mockSink{got: map[string]domain.Track{}}

	pool := NewPool(provider, sink, 4, time.Second)
	pool.Start(context.Background(), 2)
	jobs := []services.TrackJob{
		{School: "Michigan", TrackID: "t1"},
		{School: "Wisconsin", TrackID: "t2"},
		{School: "Nowhere", TrackID: "missing"},
	}
	for _, j := range jobs {
		if !pool.Submit(j) {
			t.Fatalf("job for %s was dropped", j.School)
		}
	}
	pool.Stop()

	if len(sink.got) != 2 {
		t.Fatalf("expected 2 cached tracks, got %d", len(sink.got))
	}
	if sink.got["Michigan"].Title != "Victors" {
		t.Errorf("Michigan track = %+v", sink.got["Michigan"])
	}
	if _, ok := sink.got["Nowhere"]; ok {
		t.Error("failed fetch should not be cached")
	}
}

func TestPool_SubmitDropsWhenFull(t *testing.T) {
	pool := NewPool(&mockProvider{}, &mockSink{got: map[string]domain.Track{}}, 1, time.Second)
	if !pool.Submit(services.TrackJob{School: "A", TrackID: "a"}) {
		t.Fatal("first submit should fit the queue")
	}
	if pool.Submit(services.TrackJob{School: "B", TrackID: "b"}) {
		t.Error("second submit should be dropped while no worker is running")
	}
	pool.Start(context.Background(), 1)
	pool.Stop()
}

func TestPool_CancelledContextSkipsJobs(t *testing.T) {
	provider := &mockProvider{tracks: map[string]domain.Track{"t1": {ID: "t1"}}}
	sink := &mockSink{got: map[string]domain.Track{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(provider, sink, 2, time.Second)
	pool.Submit(services.TrackJob{School: "A", TrackID: "t1"})
	pool.Start(ctx, 1)
	pool.Stop()

	if len(sink.got) != 0 {
		t.Errorf("expected nothing cached after cancel, got %d", len(sink.got))
	}
}

// --- Mocks ---

type mockProvider struct {
	tracks map[string]domain.Track
}

func (m *mockProvider) GetTrack(ctx context.Context, id string) (domain.Track, error) {
	if t, ok := m.tracks[id]; ok {
		return t, nil
	}
	return domain.Track{}, errors.New("not found")
}

type mockSink struct {
	mu  sync.Mutex
	got map[string]domain.Track
}

func (m *mockSink) CacheTrack(school string, track domain.Track) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.got[school] = track
}
