package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/metrics"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
)

// DualAverageColor is the guide colour for two-school rank charts.
const DualAverageColor = "grey"

// Settings are the presentation choices the engine itself stays out of.
type Settings struct {
	Tropes    []domain.Trope
	RankViews charts.RankViews
	Palette   charts.Palette
}

// Rankings bundles the leaderboard cards.
type Rankings struct {
	Extremes       metrics.Extremes       `json:"extremes"`
	Traditionalism metrics.Traditionalism `json:"traditionalism"`
}

// Dashboard serves read-only views over one loaded dataset snapshot.
type Dashboard struct {
	repo     ports.SongRepository
	tracks   ports.TrackProvider
	settings Settings

	mu         sync.RWMutex
	ds         *domain.Dataset
	trackCache map[string]domain.Track
}

// NewDashboard constructs a Dashboard. tracks may be nil when no audio
// provider is configured.
func NewDashboard(repo ports.SongRepository, tracks ports.TrackProvider, settings Settings) *Dashboard {
	if len(settings.Tropes) == 0 {
		settings.Tropes = domain.CanonicalTropes
	}
	if len(settings.RankViews) == 0 {
		settings.RankViews = charts.DefaultRankViews()
	}
	return &Dashboard{
		repo:     repo,
		tracks:   tracks,
		settings: settings,
	}
}

// Load reads every song from the repository and swaps in a new snapshot.
func (d *Dashboard) Load(ctx context.Context) error {
	songs, err := d.repo.LoadSongs(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load songs: %w", err)
	}
	ds, err := domain.NewDataset(uuid.NewString(), songs)
	if err != nil {
		return fmt.Errorf("service: invalid dataset: %w", err)
	}

	d.mu.Lock()
	d.ds = ds
	d.trackCache = make(map[string]domain.Track)
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) dataset() (*domain.Dataset, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.ds == nil || d.ds.Len() == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return d.ds, nil
}

// Snapshot identifies the loaded dataset.
func (d *Dashboard) Snapshot() (string, error) {
	ds, err := d.dataset()
	if err != nil {
		return "", err
	}
	return ds.Snapshot(), nil
}

// Songs returns every loaded song.
func (d *Dashboard) Songs() ([]domain.Song, error) {
	ds, err := d.dataset()
	if err != nil {
		return nil, err
	}
	return ds.Songs(), nil
}

// Song returns one school's record.
func (d *Dashboard) Song(school string) (domain.Song, error) {
	ds, err := d.dataset()
	if err != nil {
		return domain.Song{}, err
	}
	return ds.Lookup(school)
}

// Schools lists school names alphabetically.
func (d *Dashboard) Schools() ([]string, error) {
	ds, err := d.dataset()
	if err != nil {
		return nil, err
	}
	return ds.Schools(), nil
}

func (d *Dashboard) Summary() (metrics.Summary, error) {
	ds, err := d.dataset()
	if err != nil {
		return metrics.Summary{}, err
	}
	return metrics.ConferenceSummary(ds.Songs(), d.settings.Tropes)
}

func (d *Dashboard) Rankings() (Rankings, error) {
	ds, err := d.dataset()
	if err != nil {
		return Rankings{}, err
	}
	songs := ds.Songs()
	ext, err := metrics.ConferenceExtremes(songs)
	if err != nil {
		return Rankings{}, err
	}
	trad, err := metrics.TraditionalismRanking(songs, d.settings.Tropes)
	if err != nil {
		return Rankings{}, err
	}
	return Rankings{Extremes: ext, Traditionalism: trad}, nil
}

// RankTable orders all songs by one metric in the caller's direction.
func (d *Dashboard) RankTable(m domain.Metric, ascending bool) (metrics.RankTable, error) {
	ds, err := d.dataset()
	if err != nil {
		return metrics.RankTable{}, err
	}
	return metrics.NewRankTable(ds.Songs(), m, ascending)
}

func (d *Dashboard) Profile(school string) (metrics.SchoolProfile, error) {
	ds, err := d.dataset()
	if err != nil {
		return metrics.SchoolProfile{}, err
	}
	return metrics.Profile(ds, school, d.settings.Tropes)
}

func (d *Dashboard) Compare(left, right string) (metrics.Comparison, error) {
	ds, err := d.dataset()
	if err != nil {
		return metrics.Comparison{}, err
	}
	return metrics.Compare(ds, left, right)
}

// RankViews exposes the configured rank views.
func (d *Dashboard) RankViews() charts.RankViews {
	return d.settings.RankViews
}

// Palette exposes the configured school colours.
func (d *Dashboard) Palette() charts.Palette {
	return d.settings.Palette
}

// RankChart builds the rank bars for a named view with one or two schools
// highlighted in their primary colours. A single school's average line takes
// its secondary colour; two schools share a grey line.
func (d *Dashboard) RankChart(view string, schools ...string) (charts.Chart, error) {
	ds, err := d.dataset()
	if err != nil {
		return charts.Chart{}, err
	}
	rv, err := d.settings.RankViews.Lookup(view)
	if err != nil {
		return charts.Chart{}, err
	}
	if len(schools) > 2 {
		return charts.Chart{}, fmt.Errorf("service: at most two schools can be highlighted, got %d", len(schools))
	}

	highlights := make([]charts.Highlight, len(schools))
	for i, s := range schools {
		highlights[i] = charts.Highlight{School: s, Color: d.settings.Palette.Primary(s)}
	}
	avgColor := charts.Neutral
	switch len(schools) {
	case 1:
		avgColor = d.settings.Palette.Colors(schools[0]).Secondary
	case 2:
		avgColor = DualAverageColor
	}
	return charts.RankBars(ds.Songs(), rv, avgColor, highlights...)
}

func (d *Dashboard) ConferenceRadar() (charts.Chart, error) {
	ds, err := d.dataset()
	if err != nil {
		return charts.Chart{}, err
	}
	return charts.ConferenceRadar(ds.Songs(), d.settings.Tropes)
}

// SchoolRadar overlays one school on the conference; with two schools it
// draws them against each other instead.
func (d *Dashboard) SchoolRadar(schools ...string) (charts.Chart, error) {
	ds, err := d.dataset()
	if err != nil {
		return charts.Chart{}, err
	}
	switch len(schools) {
	case 0:
		return charts.ConferenceRadar(ds.Songs(), d.settings.Tropes)
	case 1:
		return charts.SchoolRadar(ds, schools[0], d.settings.Palette, d.settings.Tropes)
	case 2:
		return charts.DualRadar(ds, schools[0], schools[1], d.settings.Palette, d.settings.Tropes)
	}
	return charts.Chart{}, fmt.Errorf("service: at most two schools can be compared, got %d", len(schools))
}

func (d *Dashboard) Heatmap() (charts.Chart, error) {
	ds, err := d.dataset()
	if err != nil {
		return charts.Chart{}, err
	}
	return charts.TropeHeatmap(ds.Songs(), d.settings.Tropes)
}

func (d *Dashboard) Scatter(highlights ...string) (charts.Chart, error) {
	ds, err := d.dataset()
	if err != nil {
		return charts.Chart{}, err
	}
	return charts.TempoDuration(ds.Songs(), d.settings.Palette, highlights...)
}

// Track resolves the audio track for a school's fight song.
func (d *Dashboard) Track(ctx context.Context, school string) (domain.Track, error) {
	song, err := d.Song(school)
	if err != nil {
		return domain.Track{}, err
	}
	if song.AudioTrackID == "" || d.tracks == nil {
		return domain.Track{}, ports.NoTrackError{School: school}
	}
	if track, ok := d.cachedTrack(song.School); ok {
		return track, nil
	}
	track, err := d.tracks.GetTrack(ctx, song.AudioTrackID)
	if err != nil {
		return domain.Track{}, fmt.Errorf("service: failed to fetch track: %w", err)
	}
	d.CacheTrack(song.School, track)
	return track, nil
}

// TrackJob names one school whose track can be prefetched.
type TrackJob struct {
	School  string
	TrackID string
}

// TrackJobs lists the schools with a track id that are not cached yet.
func (d *Dashboard) TrackJobs() []TrackJob {
	if d.tracks == nil {
		return nil
	}
	ds, err := d.dataset()
	if err != nil {
		return nil
	}
	var jobs []TrackJob
	for _, s := range ds.Songs() {
		if s.AudioTrackID == "" {
			continue
		}
		if _, ok := d.cachedTrack(s.School); ok {
			continue
		}
		jobs = append(jobs, TrackJob{School: s.School, TrackID: s.AudioTrackID})
	}
	return jobs
}

// CacheTrack stores a resolved track for the current snapshot.
func (d *Dashboard) CacheTrack(school string, track domain.Track) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.trackCache != nil {
		d.trackCache[school] = track
	}
}

func (d *Dashboard) cachedTrack(school string) (domain.Track, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.trackCache[school]
	return t, ok
}

// Dictionary documents the dataset's variables.
func (d *Dashboard) Dictionary() []domain.VariableGroup {
	return domain.DataDictionary()
}
