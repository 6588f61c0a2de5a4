// Package sqlite provides a SQLite-backed implementation of the song store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
)

var _ ports.SongStore = (*Adapter)(nil)

// Adapter implements the song store port for SQLite
type Adapter struct {
	db *sql.DB
}

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// One connection keeps ":memory:" databases from splitting per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Import describes one SaveSongs call.
type Import struct {
	ID         string
	ImportedAt string
	SongCount  int
}

// tropeColumns are the flag columns in canonical order.
func tropeColumns() []string {
	cols := make([]string, len(domain.CanonicalTropes))
	for i, t := range domain.CanonicalTropes {
		cols[i] = t.String()
	}
	return cols
}

var songColumns = append([]string{
	"school", "conference", "song_name", "writers", "year",
	"student_writer", "official_song", "contest",
	"bpm", "sec_duration", "number_fights", "spotify_id",
}, tropeColumns()...)

// LoadSongs returns every song of the latest import, ordered by school.
func (a *Adapter) LoadSongs(ctx context.Context) ([]domain.Song, error) {
	rows, err := a.db.QueryContext(ctx,
		"SELECT "+strings.Join(songColumns, ", ")+" FROM fight_songs ORDER BY school ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load songs: %w", err)
	}
	defer rows.Close()

	var songs []domain.Song
	for rows.Next() {
		var (
			s       domain.Song
			writers sql.NullString
			trackID sql.NullString
			flags   = make([]bool, len(domain.CanonicalTropes))
		)
		dest := []any{
			&s.School, &s.Conference, &s.SongName, &writers, &s.Year,
			&s.StudentWriter, &s.OfficialSong, &s.ContestChosen,
			&s.Tempo, &s.Duration, &s.FightMentions, &trackID,
		}
		for i := range flags {
			dest = append(dest, &flags[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		if writers.Valid {
			s.Writers = writers.String
		}
		if trackID.Valid {
			s.AudioTrackID = trackID.String
		}
		for i, t := range domain.CanonicalTropes {
			s.Tropes = s.Tropes.With(t, flags[i])
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate songs: %w", err)
	}

	return songs, nil
}

// SaveSongs replaces the stored dataset with songs and records the import.
func (a *Adapter) SaveSongs(ctx context.Context, songs []domain.Song) (string, error) {
	for _, s := range songs {
		if err := s.Validate(); err != nil {
			return "", err
		}
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after Commit

	importID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO imports (id, song_count) VALUES (?, ?)", importID, len(songs)); err != nil {
		return "", fmt.Errorf("failed to record import: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM fight_songs"); err != nil {
		return "", fmt.Errorf("failed to clear old songs: %w", err)
	}

	cols := append(append([]string{}, songColumns...), "import_id")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO fight_songs (%s) VALUES (%s)",
		strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "),
	))
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, s := range songs {
		args := []any{
			s.School, s.Conference, s.SongName, nullable(s.Writers), s.Year,
			s.StudentWriter, s.OfficialSong, s.ContestChosen,
			s.Tempo, s.Duration, s.FightMentions, nullable(s.AudioTrackID),
		}
		for _, t := range domain.CanonicalTropes {
			args = append(args, s.Tropes.Has(t))
		}
		args = append(args, importID)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			if isUniqueError(err) {
				return "", fmt.Errorf("%w: %s", domain.ErrDuplicateSchool, s.School)
			}
			return "", fmt.Errorf("failed to save song %s: %w", s.School, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("transaction commit failed: %w", err)
	}

	return importID, nil
}

// Imports lists past imports, newest first.
func (a *Adapter) Imports(ctx context.Context) ([]Import, error) {
	rows, err := a.db.QueryContext(ctx,
		"SELECT id, imported_at, song_count FROM imports ORDER BY imported_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to load imports: %w", err)
	}
	defer rows.Close()

	var out []Import
	for rows.Next() {
		var imp Import
		if err := rows.Scan(&imp.ID, &imp.ImportedAt, &imp.SongCount); err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		out = append(out, imp)
	}
	return out, rows.Err()
}

func (a *Adapter) migrate() error {
	var flags strings.Builder
	for _, c := range tropeColumns() {
		fmt.Fprintf(&flags, "\t\t%s INTEGER NOT NULL DEFAULT 0,\n", c)
	}

	query := `
	CREATE TABLE IF NOT EXISTS imports (
		id TEXT PRIMARY KEY,
		song_count INTEGER NOT NULL,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS fight_songs (
		school TEXT PRIMARY KEY,
		conference TEXT NOT NULL DEFAULT '',
		song_name TEXT NOT NULL DEFAULT '',
		writers TEXT,
		year INTEGER NOT NULL,
		student_writer INTEGER NOT NULL DEFAULT 0,
		official_song INTEGER NOT NULL DEFAULT 0,
		contest INTEGER NOT NULL DEFAULT 0,
		bpm REAL NOT NULL,
		sec_duration REAL NOT NULL,
		number_fights INTEGER NOT NULL DEFAULT 0,
` + flags.String() + `		import_id TEXT,
		FOREIGN KEY(import_id) REFERENCES imports(id)
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	// Added after the first schema; older databases lack it.
	if _, err := a.db.Exec("ALTER TABLE fight_songs ADD COLUMN spotify_id TEXT"); err != nil {
		if !isDuplicateColumnError(err) {
			return err
		}
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isDuplicateColumnError(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "duplicate column") || strings.Contains(err.Error(), "already exists"))
}

func isUniqueError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
