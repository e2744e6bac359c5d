package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-dirtbikes/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreEmptyStats(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	if diff := cmp.Diff(stats.Stats{}, got); diff != "" {
		t.Errorf("empty database stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreSaveAndLoadStats(t *testing.T) {
	store := openTestStore(t)

	best := 41.5
	want := stats.Stats{TotalRaces: 3, Wins: 2, BestTime: &best}
	if err := store.SaveStats(want); err != nil {
		t.Fatalf("SaveStats() failed: %v", err)
	}

	got, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	// Second save overwrites the single row
	want = stats.Stats{TotalRaces: 4, Wins: 2, BestTime: &best}
	if err := store.SaveStats(want); err != nil {
		t.Fatalf("SaveStats() failed: %v", err)
	}
	got, _ = store.LoadStats()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats after overwrite mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreNullBestTime(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveStats(stats.Stats{TotalRaces: 1}); err != nil {
		t.Fatalf("SaveStats() failed: %v", err)
	}
	got, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	if got.BestTime != nil {
		t.Errorf("BestTime = %v, want nil", *got.BestTime)
	}
}

func TestStoreRecentRaces(t *testing.T) {
	store := openTestStore(t)

	races := []stats.Outcome{
		{RaceID: "a", Racers: 5, PlayerFinished: true, PlayerTime: 30, PlayerPlace: 2, Winner: "BOT-1", WinnerTime: 28},
		{RaceID: "b", Racers: 5, PlayerFinished: true, PlayerTime: 25, PlayerPlace: 1, PlayerWon: true, Winner: "YOU", WinnerTime: 25},
		{RaceID: "c", Racers: 1, PlayerFinished: true, PlayerTime: 21, PlayerPlace: 1, PlayerWon: true, Winner: "YOU", WinnerTime: 21},
	}
	for _, o := range races {
		if err := store.SaveRace(o); err != nil {
			t.Fatalf("SaveRace(%s) failed: %v", o.RaceID, err)
		}
	}

	recent, err := store.RecentRaces(2)
	if err != nil {
		t.Fatalf("RecentRaces() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 races, got %d", len(recent))
	}
	if recent[0].RaceID != "c" || recent[1].RaceID != "b" {
		t.Errorf("Expected newest first [c b], got [%s %s]", recent[0].RaceID, recent[1].RaceID)
	}
	if !recent[1].PlayerWon || recent[1].Winner != "YOU" {
		t.Errorf("Race b fields not round-tripped: %+v", recent[1])
	}
}

func TestStoreFastestRaces(t *testing.T) {
	store := openTestStore(t)

	store.SaveRace(stats.Outcome{RaceID: "slow", PlayerFinished: true, PlayerTime: 40})
	store.SaveRace(stats.Outcome{RaceID: "fast", PlayerFinished: true, PlayerTime: 22})
	store.SaveRace(stats.Outcome{RaceID: "mid", PlayerFinished: true, PlayerTime: 31})
	store.SaveRace(stats.Outcome{RaceID: "dnf"})

	fastest, err := store.FastestRaces(10)
	if err != nil {
		t.Fatalf("FastestRaces() failed: %v", err)
	}

	got := make([]string, len(fastest))
	for i, e := range fastest {
		got[i] = e.RaceID
	}
	if diff := cmp.Diff([]string{"fast", "mid", "slow"}, got); diff != "" {
		t.Errorf("fastest order mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreDuplicateRaceID(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveRace(stats.Outcome{RaceID: "dup"}); err != nil {
		t.Fatalf("SaveRace() failed: %v", err)
	}
	if err := store.SaveRace(stats.Outcome{RaceID: "dup"}); err == nil {
		t.Error("Expected error for duplicate race id")
	}
}

func TestStoreClearRaces(t *testing.T) {
	store := openTestStore(t)

	store.SaveStats(stats.Stats{TotalRaces: 2, Wins: 1})
	store.SaveRace(stats.Outcome{RaceID: "x"})
	store.SaveRace(stats.Outcome{RaceID: "y"})

	if err := store.ClearRaces(); err != nil {
		t.Fatalf("ClearRaces() failed: %v", err)
	}

	recent, _ := store.RecentRaces(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 races after clear, got %d", len(recent))
	}

	// Aggregate stats survive
	got, _ := store.LoadStats()
	if got.TotalRaces != 2 || got.Wins != 1 {
		t.Errorf("Stats should not be affected by clearing races, got %+v", got)
	}
}

func TestStoreWithBook(t *testing.T) {
	store := openTestStore(t)

	book := stats.OpenBook(store, nil)
	book.Record(stats.Outcome{RaceID: "r1", Racers: 1, PlayerFinished: true, PlayerTime: 42, PlayerPlace: 1, PlayerWon: true, Winner: "YOU", WinnerTime: 42})

	got, err := store.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats() failed: %v", err)
	}
	best := 42.0
	if diff := cmp.Diff(stats.Stats{TotalRaces: 1, Wins: 1, BestTime: &best}, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	recent, _ := store.RecentRaces(10)
	if len(recent) != 1 || recent[0].RaceID != "r1" {
		t.Errorf("Expected race r1 in history, got %+v", recent)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
