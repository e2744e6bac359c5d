// Package stats keeps the aggregate race record (races, wins, best time) and
// persists it on a best-effort basis: storage faults never interrupt a race.
package stats

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Stats is the process-wide race record.
type Stats struct {
	TotalRaces int      `json:"total_races"`
	Wins       int      `json:"wins"`
	BestTime   *float64 `json:"best_time"` // nil until the player finishes a race
}

// Outcome describes one completed race from the player's point of view.
type Outcome struct {
	RaceID         string
	Racers         int // Including the player
	PlayerFinished bool
	PlayerTime     float64
	PlayerPlace    int // 1-based
	PlayerWon      bool
	Winner         string
	WinnerTime     float64
	FinishedAt     time.Time
}

// Apply returns the record updated with one race outcome.
func (s Stats) Apply(o Outcome) Stats {
	s.TotalRaces++
	if o.PlayerFinished && (s.BestTime == nil || o.PlayerTime < *s.BestTime) {
		best := o.PlayerTime
		s.BestTime = &best
	}
	if o.PlayerWon {
		s.Wins++
	}
	return s
}

// Store persists the aggregate record.
type Store interface {
	LoadStats() (Stats, error)
	SaveStats(Stats) error
}

// HistoryStore is optionally implemented by stores that keep per-race rows.
type HistoryStore interface {
	SaveRace(Outcome) error
}

// Book holds the current record, loaded once and saved after every race.
// It is safe for concurrent use so that several sessions can share one store.
type Book struct {
	mu      sync.Mutex // guards current
	saveMu  sync.Mutex // orders saves so the store never goes backwards
	store   Store
	logger  *log.Logger
	current Stats
}

// OpenBook loads the record from store. A nil store keeps the record in memory
// only; a failing load starts from the zero record.
func OpenBook(store Store, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &Book{store: store, logger: logger}
	if store == nil {
		return b
	}

	loaded, err := store.LoadStats()
	if err != nil {
		logger.Warn("could not load stats, starting fresh", "error", err)
		return b
	}
	b.current = loaded
	return b
}

// Stats returns a copy of the current record.
func (b *Book) Stats() Stats {
	if b == nil {
		return Stats{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.current
	if out.BestTime != nil {
		best := *out.BestTime
		out.BestTime = &best
	}
	return out
}

// Record applies the outcome, saves the record immediately and, when the store
// keeps history, appends the race. Save failures are logged and ignored.
func (b *Book) Record(o Outcome) Stats {
	if b == nil {
		return Stats{}.Apply(o)
	}

	b.saveMu.Lock()
	defer b.saveMu.Unlock()

	b.mu.Lock()
	b.current = b.current.Apply(o)
	snapshot := b.current
	b.mu.Unlock()

	if b.store == nil {
		return snapshot
	}

	if err := b.store.SaveStats(snapshot); err != nil {
		b.logger.Warn("could not save stats", "error", err)
	}
	if history, ok := b.store.(HistoryStore); ok {
		if err := history.SaveRace(o); err != nil {
			b.logger.Warn("could not save race", "race", o.RaceID, "error", err)
		}
	}
	return snapshot
}
