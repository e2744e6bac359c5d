// Package dirtbikes implements a side-scrolling lane racer: the player and
// a field of bots ride across an obstacle track, with jumps, collision
// penalties and particle effects.
package dirtbikes

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dirtbikes/internal/config"
	"github.com/vovakirdan/tui-dirtbikes/internal/core"
	"github.com/vovakirdan/tui-dirtbikes/internal/registry"
	"github.com/vovakirdan/tui-dirtbikes/internal/stats"
)

// State is a phase of the game state machine.
type State int

const (
	StateHome State = iota
	StateCountdown
	StateRace
	StatePause
	StateEnd
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StateCountdown:
		return "countdown"
	case StateRace:
		return "race"
	case StatePause:
		return "pause"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Mode describes a registered variant of the race.
type Mode struct {
	ID    string
	Title string
	// FixedBots pins the field size; negative lets the player choose.
	FixedBots int
}

var (
	ModeRace      = Mode{ID: "dirtbikes", Title: "Dirtbikes", FixedBots: -1}
	ModeTimeTrial = Mode{ID: "timetrial", Title: "Dirtbikes Time Trial", FixedBots: 0}
)

// Game implements registry.Game on top of a Session.
type Game struct {
	mode    Mode
	cfg     config.DirtbikesConfig
	book    *stats.Book
	logger  *log.Logger
	theme   Theme
	runtime core.RuntimeConfig
	session *Session

	state      State
	pausedFrom State
	countdown  float64 // seconds since the countdown began
	bots       int
	quit       bool
}

// New creates a game in the given mode. A zero Env is valid.
func New(mode Mode, env registry.Env) *Game {
	cfg := config.DefaultDirtbikesConfig()
	if env.Config != nil {
		cfg = *env.Config
		cfg.Normalize()
	}
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	book := env.Stats
	if book == nil {
		book = stats.OpenBook(nil, logger)
	}

	g := &Game{
		mode:   mode,
		cfg:    cfg,
		book:   book,
		logger: logger,
		theme:  ThemeFromConfig(cfg.Theme),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string { return g.mode.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.mode.Title }

// Reset returns to the home screen with a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.session = NewSession(Options{
		Rand:          rand.New(rand.NewSource(seed)),
		Book:          g.book,
		Logger:        g.logger,
		Theme:         g.theme,
		ViewWidth:     max(runtime.ScreenW, g.cfg.Race.ViewWidthMin),
		ReducedMotion: g.cfg.Race.ReducedMotion,
	})

	g.state = StateHome
	g.pausedFrom = StateRace
	g.countdown = 0
	g.quit = false
	g.bots = g.cfg.Race.Bots
	if g.mode.FixedBots >= 0 {
		g.bots = g.mode.FixedBots
	}
}

// Resize adapts the camera viewport to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.session.SetViewWidth(max(w, g.cfg.Race.ViewWidthMin))
}

// Step applies one frame of input and advances the active phase by in.DT.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := in.DT
	if dt <= 0 {
		dt = Tick
	}

	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateHome:
		g.stepHome(in)
	case StateCountdown:
		g.stepCountdown(in, dt)
	case StateRace:
		g.stepRace(in, dt)
	case StatePause:
		g.stepPause(in)
	case StateEnd:
		g.stepEnd(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepHome(in core.InputFrame) {
	if in.Has(core.ActionToggleReducedMotion) {
		g.session.SetReducedMotion(!g.session.ReducedMotion())
	}
	if g.mode.FixedBots < 0 {
		if in.Has(core.ActionMoreBots) {
			g.bots = config.ClampBots(g.bots + 1)
		}
		if in.Has(core.ActionFewerBots) {
			g.bots = config.ClampBots(g.bots - 1)
		}
	}
	if in.Has(core.ActionConfirm) {
		g.startCountdown()
	}
}

func (g *Game) stepCountdown(in core.InputFrame, dt float64) {
	if in.Has(core.ActionPause) {
		g.pause()
		return
	}
	g.countdown += dt
	if g.countdown >= CountdownTotal {
		g.state = StateRace
	}
}

func (g *Game) stepRace(in core.InputFrame, dt float64) {
	switch {
	case in.Has(core.ActionPause):
		g.pause()
		return
	case in.Has(core.ActionRestart):
		g.startCountdown()
		return
	case in.Has(core.ActionHome):
		g.state = StateHome
		return
	}

	if in.Has(core.ActionToggleReducedMotion) {
		g.session.SetReducedMotion(!g.session.ReducedMotion())
	}
	if in.Has(core.ActionToggleEngine) {
		g.session.ToggleEngine()
	}
	if in.Has(core.ActionThrottle) {
		g.session.Throttle()
	}
	if in.Has(core.ActionBrake) {
		g.session.Brake()
	}
	if in.Has(core.ActionJump) {
		g.session.Jump()
	}

	if g.session.Tick(dt) {
		g.state = StateEnd
	}
}

func (g *Game) stepPause(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause):
		g.state = g.pausedFrom
	case in.Has(core.ActionRestart):
		g.startCountdown()
	case in.Has(core.ActionHome):
		g.state = StateHome
	}
}

func (g *Game) stepEnd(in core.InputFrame) {
	switch {
	case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
		g.startCountdown()
	case in.Has(core.ActionHome):
		g.state = StateHome
	}
}

func (g *Game) pause() {
	g.pausedFrom = g.state
	g.state = StatePause
}

// startCountdown lines up a fresh race and begins the 3-2-1-GO sequence.
func (g *Game) startCountdown() {
	g.session.Start(g.bots)
	g.countdown = 0
	g.state = StateCountdown
}

// CountdownPhase maps countdown time to the displayed phase: 3, 2, 1, then 0 for GO.
func CountdownPhase(elapsed float64) int {
	switch {
	case elapsed < 1:
		return 3
	case elapsed < 2:
		return 2
	case elapsed < 3:
		return 1
	default:
		return 0
	}
}

// Session exposes the underlying race session.
func (g *Game) Session() *Session { return g.session }

// Phase returns the current state.
func (g *Game) Phase() State { return g.state }

// Bots returns the field size for the next race.
func (g *Game) Bots() int { return g.bots }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.state.String(),
		GameOver: g.state == StateEnd,
		Paused:   g.state == StatePause,
		Quit:     g.quit,
	}
}

// Register the race modes with the registry
func init() {
	registry.Register(ModeRace.ID, func(env registry.Env) registry.Game {
		return New(ModeRace, env)
	})
	registry.Register(ModeTimeTrial.ID, func(env registry.Env) registry.Game {
		return New(ModeTimeTrial, env)
	})
}
