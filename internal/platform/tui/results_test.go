package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dirtbikes/internal/storage"
)

type fakeHistory struct {
	recent, fastest []storage.RaceEntry
	err             error
	calls           []string
}

func (h *fakeHistory) RecentRaces(int) ([]storage.RaceEntry, error) {
	h.calls = append(h.calls, "recent")
	return h.recent, h.err
}

func (h *fakeHistory) FastestRaces(int) ([]storage.RaceEntry, error) {
	h.calls = append(h.calls, "fastest")
	return h.fastest, h.err
}

func TestResultsSwitchesViews(t *testing.T) {
	h := &fakeHistory{
		recent:  []storage.RaceEntry{{RaceID: "a"}, {RaceID: "b"}},
		fastest: []storage.RaceEntry{{RaceID: "b", PlayerFinished: true}},
	}
	m := NewResultsModel(h, nil, 80, 24)

	if m.CurrentView() != ResultsRecent || len(m.Races()) != 2 {
		t.Fatalf("initial view = %v with %d races", m.CurrentView(), len(m.Races()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ResultsModel)
	if m.CurrentView() != ResultsFastest || len(m.Races()) != 1 {
		t.Errorf("after tab view = %v with %d races", m.CurrentView(), len(m.Races()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ResultsModel)
	if m.CurrentView() != ResultsRecent {
		t.Errorf("after shift+tab view = %v, want Recent", m.CurrentView())
	}

	if len(h.calls) != 3 {
		t.Errorf("history calls = %v, want three loads", h.calls)
	}
}

func TestResultsBackAndQuit(t *testing.T) {
	m := NewResultsModel(&fakeHistory{}, nil, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(ResultsModel)
	if !back.IsGoingBack() || back.IsQuitting() || cmd == nil {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ResultsModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestResultsLoadErrorShowsMessage(t *testing.T) {
	m := NewResultsModel(&fakeHistory{err: errors.New("disk gone")}, nil, 80, 24)
	if len(m.Races()) != 0 {
		t.Error("failed load should list nothing")
	}
	if m.View() == "" {
		t.Error("view should render despite the error")
	}
}

func TestRaceRows(t *testing.T) {
	at := time.Date(2026, 3, 4, 15, 4, 0, 0, time.Local)
	rows := raceRows([]storage.RaceEntry{
		{Racers: 6, PlayerFinished: true, PlayerTime: 41.234, PlayerPlace: 2, Winner: "BOT-3", WinnerTime: 40.5, CreatedAt: at},
		{Racers: 4, Winner: "BOT-1", WinnerTime: 39, CreatedAt: at},
	})

	want := [][]string{
		{"1", "2/6", "41.23s", "BOT-3", "40.50s", "Mar 04 15:04"},
		{"2", "DNF", "--", "BOT-1", "39.00s", "Mar 04 15:04"},
	}
	for i, row := range rows {
		for j, cell := range row {
			if cell != want[i][j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, cell, want[i][j])
			}
		}
	}
}
