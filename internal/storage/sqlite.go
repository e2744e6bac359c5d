// Package storage provides SQLite-based persistence for race stats and history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-dirtbikes/internal/stats"
)

const timestampLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for stats persistence.
type Store struct {
	db *sql.DB
}

// RaceEntry represents a single recorded race.
type RaceEntry struct {
	ID             int64
	RaceID         string
	Racers         int
	PlayerFinished bool
	PlayerTime     float64
	PlayerPlace    int
	PlayerWon      bool
	Winner         string
	WinnerTime     float64
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total_races INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			best_time REAL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS races (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			race_id TEXT NOT NULL UNIQUE,
			racers INTEGER NOT NULL,
			player_finished INTEGER NOT NULL DEFAULT 0,
			player_time REAL NOT NULL DEFAULT 0,
			player_place INTEGER NOT NULL DEFAULT 0,
			player_won INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			winner_time REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_races_created ON races(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_races_player_time ON races(player_finished, player_time);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadStats implements stats.Store. An empty database yields the zero record.
func (s *Store) LoadStats() (stats.Stats, error) {
	var (
		out  stats.Stats
		best sql.NullFloat64
	)

	err := s.db.QueryRow(
		"SELECT total_races, wins, best_time FROM stats WHERE id = 1",
	).Scan(&out.TotalRaces, &out.Wins, &best)

	if errors.Is(err, sql.ErrNoRows) {
		return stats.Stats{}, nil
	}
	if err != nil {
		return stats.Stats{}, fmt.Errorf("storage: cannot load stats: %w", err)
	}

	if best.Valid {
		v := best.Float64
		out.BestTime = &v
	}
	return out, nil
}

// SaveStats implements stats.Store by upserting the single stats row.
func (s *Store) SaveStats(st stats.Stats) error {
	var best sql.NullFloat64
	if st.BestTime != nil {
		best = sql.NullFloat64{Float64: *st.BestTime, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO stats (id, total_races, wins, best_time, updated_at)
		 VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   total_races = excluded.total_races,
		   wins = excluded.wins,
		   best_time = excluded.best_time,
		   updated_at = excluded.updated_at`,
		st.TotalRaces, st.Wins, best,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save stats: %w", err)
	}
	return nil
}

// SaveRace implements stats.HistoryStore.
func (s *Store) SaveRace(o stats.Outcome) error {
	_, err := s.db.Exec(
		`INSERT INTO races
		 (race_id, racers, player_finished, player_time, player_place, player_won, winner, winner_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.RaceID,
		o.Racers,
		o.PlayerFinished,
		o.PlayerTime,
		o.PlayerPlace,
		o.PlayerWon,
		o.Winner,
		o.WinnerTime,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save race: %w", err)
	}
	return nil
}

// Ensure Store implements the stats persistence contracts
var (
	_ stats.Store        = (*Store)(nil)
	_ stats.HistoryStore = (*Store)(nil)
)

// RecentRaces retrieves the most recent races, newest first.
func (s *Store) RecentRaces(limit int) ([]RaceEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryRaces(
		`SELECT id, race_id, racers, player_finished, player_time, player_place,
		        player_won, winner, winner_time, created_at
		 FROM races
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// FastestRaces retrieves the player's fastest finished races.
func (s *Store) FastestRaces(limit int) ([]RaceEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRaces(
		`SELECT id, race_id, racers, player_finished, player_time, player_place,
		        player_won, winner, winner_time, created_at
		 FROM races
		 WHERE player_finished = 1
		 ORDER BY player_time ASC
		 LIMIT ?`,
		limit,
	)
}

// ClearRaces deletes the race history. Aggregate stats are kept.
func (s *Store) ClearRaces() error {
	if _, err := s.db.Exec("DELETE FROM races"); err != nil {
		return fmt.Errorf("storage: cannot clear races: %w", err)
	}
	return nil
}

func (s *Store) queryRaces(query string, args ...any) ([]RaceEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query races: %w", err)
	}
	defer rows.Close()

	var entries []RaceEntry
	for rows.Next() {
		var e RaceEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.RaceID,
			&e.Racers,
			&e.PlayerFinished,
			&e.PlayerTime,
			&e.PlayerPlace,
			&e.PlayerWon,
			&e.Winner,
			&e.WinnerTime,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timestampLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
