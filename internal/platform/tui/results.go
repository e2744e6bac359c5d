package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dirtbikes/internal/stats"
	"github.com/vovakirdan/tui-dirtbikes/internal/storage"
)

// Results board layout constants
const (
	maxResults   = 100 // Max races to load per tab
	chromeHeight = 10  // Title, tabs, summary, help and borders
)

// RaceHistory is the read side of the race log.
type RaceHistory interface {
	RecentRaces(limit int) ([]storage.RaceEntry, error)
	FastestRaces(limit int) ([]storage.RaceEntry, error)
}

// ResultsView selects which slice of the race log the board shows.
type ResultsView int

const (
	ResultsRecent ResultsView = iota
	ResultsFastest
)

var resultsViews = []ResultsView{ResultsRecent, ResultsFastest}

func (v ResultsView) String() string {
	switch v {
	case ResultsRecent:
		return "Recent"
	case ResultsFastest:
		return "Fastest"
	default:
		return "Unknown"
	}
}

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the race results board.
type ResultsModel struct {
	history   RaceHistory
	book      *stats.Book
	view      ResultsView
	races     []storage.RaceEntry
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ResultsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewResultsModel creates a new results board. history and book may be nil.
func NewResultsModel(history RaceHistory, book *stats.Book, width, height int) ResultsModel {
	h := help.New()
	h.Width = width

	m := ResultsModel{
		history: history,
		book:    book,
		keys:    DefaultResultsKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRaces()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Place", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Winner", Width: 8},
		{Title: "Win time", Width: 9},
		{Title: "Date", Width: 13},
	}

	height := m.height - chromeHeight
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRaces reads the current view from the race log.
func (m *ResultsModel) loadRaces() {
	m.races = nil
	m.loadErr = nil
	if m.history != nil {
		switch m.view {
		case ResultsRecent:
			m.races, m.loadErr = m.history.RecentRaces(maxResults)
		case ResultsFastest:
			m.races, m.loadErr = m.history.FastestRaces(maxResults)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded races.
func (m *ResultsModel) updateTableRows() {
	m.table.SetRows(raceRows(m.races))
	m.table.GotoTop()
}

// raceRows formats race entries as table rows.
func raceRows(races []storage.RaceEntry) []table.Row {
	rows := make([]table.Row, len(races))
	for i, r := range races {
		place, playerTime := "DNF", "--"
		if r.PlayerFinished {
			place = fmt.Sprintf("%d/%d", r.PlayerPlace, r.Racers)
			playerTime = fmt.Sprintf("%.2fs", r.PlayerTime)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			place,
			playerTime,
			r.Winner,
			fmt.Sprintf("%.2fs", r.WinnerTime),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.view = resultsViews[(int(m.view)+1)%len(resultsViews)]
			m.loadRaces()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.view = resultsViews[(int(m.view)+len(resultsViews)-1)%len(resultsViews)]
			m.loadRaces()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("RACE RESULTS"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.renderTableContent())))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(dim.Render(statsLine(m.book.Stats())), m.width))
	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the view selector.
func (m ResultsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(resultsViews))
	for i, v := range resultsViews {
		if v == m.view {
			tabs[i] = activeTabStyle.Render(v.String())
		} else {
			tabs[i] = tabStyle.Render(v.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or an explanation of why it is empty.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.history == nil:
		return emptyStyle.Render("Race history needs the sqlite stats backend.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load races.")
	case len(m.races) == 0:
		if m.view == ResultsFastest {
			return emptyStyle.Render("No finished races yet.")
		}
		return emptyStyle.Render("No races recorded yet.\nFinish a race to see it here!")
	}

	return m.table.View()
}

// CurrentView returns the board's current view selector.
func (m ResultsModel) CurrentView() ResultsView {
	return m.view
}

// Races returns the entries currently listed.
func (m ResultsModel) Races() []storage.RaceEntry {
	return m.races
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults runs the results board.
// Returns true if user wants to go back to menu, false if quitting.
func RunResults(history RaceHistory, book *stats.Book, width, height int) (goBack bool, err error) {
	model := NewResultsModel(history, book, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ResultsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
