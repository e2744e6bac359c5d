package dirtbikes

import (
	"io"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-dirtbikes/internal/config"
	"github.com/vovakirdan/tui-dirtbikes/internal/core"
	"github.com/vovakirdan/tui-dirtbikes/internal/stats"
)

// Options configures a Session. Zero values select defaults.
type Options struct {
	Rand          *rand.Rand
	Book          *stats.Book
	Logger        *log.Logger
	Theme         Theme
	ViewWidth     int
	ReducedMotion bool
}

// Standing is one row of the race results.
type Standing struct {
	Place    int
	Name     string
	IsPlayer bool
	Finished bool
	Time     float64
}

// Session owns the state of one race: track, racers, particles, camera, clock.
type Session struct {
	rng     *rand.Rand
	book    *stats.Book
	logger  *log.Logger
	fx      *ParticleSystem
	bots    *BotPolicy
	physics *Physics

	track  *Track
	racers []*Racer

	camera        float64
	clock         float64
	viewWidth     int
	reducedMotion bool

	raceID   string
	botCount int
	ended    bool
}

// NewSession creates an idle session. Call Start before Tick.
func NewSession(opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Book == nil {
		opts.Book = stats.OpenBook(nil, opts.Logger)
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}

	fx := NewParticleSystem(opts.Rand, opts.Theme)
	s := &Session{
		rng:           opts.Rand,
		book:          opts.Book,
		logger:        opts.Logger,
		fx:            fx,
		bots:          NewBotPolicy(opts.Rand, fx),
		physics:       NewPhysics(fx),
		track:         NewTrack(TrackLength, Lanes, nil),
		reducedMotion: opts.ReducedMotion,
	}
	s.SetViewWidth(opts.ViewWidth)
	return s
}

// Start regenerates the track and lines up the player plus bots.
func (s *Session) Start(bots int) {
	bots = config.ClampBots(bots)

	s.track.Regenerate(s.rng)

	s.racers = make([]*Racer, 0, bots+1)
	s.racers = append(s.racers, NewPlayer(Lanes/2))
	for i := range bots {
		s.racers = append(s.racers, NewBot(i, i%Lanes, s.rng))
	}

	s.fx.Clear()
	s.camera = 0
	s.clock = 0
	s.botCount = bots
	s.ended = false
	s.raceID = uuid.NewString()

	s.logger.Info("race started", "race", s.raceID, "bots", bots, "obstacles", s.track.Count())
}

// Tick advances the race by dt. It returns true on the tick the last
// racer crosses the line.
func (s *Session) Tick(dt float64) bool {
	if s.ended || len(s.racers) == 0 {
		return false
	}

	s.clock += dt
	for _, r := range s.racers {
		if r.Finished {
			continue
		}
		if r.IsPlayer {
			r.coast(dt)
		} else {
			s.bots.Apply(r, s.track, dt)
		}
		s.physics.Step(r, s.track, s.clock, dt)
	}

	s.updateCamera()

	s.fx.Tick(dt)
	for _, r := range s.racers {
		if r.SparkCooldown > 0 {
			r.SparkCooldown = max(0, r.SparkCooldown-dt)
		}
	}

	if lo.EveryBy(s.racers, func(r *Racer) bool { return r.Finished }) {
		s.finish()
		return true
	}
	return false
}

func (s *Session) updateCamera() {
	player := s.Player()
	if player == nil {
		return
	}
	target := player.X - float64(s.viewWidth/3)
	if s.reducedMotion {
		s.camera = core.ClampF(target, 0, s.track.Length)
	} else {
		s.camera = core.Lerp(s.camera, target, CameraSmoothing)
	}
}

// finish records the result and persists stats.
func (s *Session) finish() {
	s.ended = true

	standings := s.Standings()
	player := s.Player()
	winner := standings[0]

	outcome := stats.Outcome{
		RaceID:         s.raceID,
		Racers:         len(s.racers),
		PlayerFinished: player.Finished,
		PlayerTime:     player.FinishTime,
		PlayerWon:      winner.IsPlayer,
		Winner:         winner.Name,
		WinnerTime:     winner.Time,
		FinishedAt:     time.Now(),
	}
	if row, ok := lo.Find(standings, func(st Standing) bool { return st.IsPlayer }); ok {
		outcome.PlayerPlace = row.Place
	}

	s.book.Record(outcome)
	s.logger.Info("race finished",
		"race", s.raceID,
		"winner", winner.Name,
		"winner_time", winner.Time,
		"player_place", outcome.PlayerPlace,
		"player_time", player.FinishTime,
	)
}

// Standings ranks racers by finish time. Ties keep starting order;
// unfinished racers rank last.
func (s *Session) Standings() []Standing {
	ordered := make([]*Racer, len(s.racers))
	copy(ordered, s.racers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return finishKey(ordered[i]) < finishKey(ordered[j])
	})

	return lo.Map(ordered, func(r *Racer, i int) Standing {
		return Standing{
			Place:    i + 1,
			Name:     r.Name,
			IsPlayer: r.IsPlayer,
			Finished: r.Finished,
			Time:     r.FinishTime,
		}
	})
}

func finishKey(r *Racer) float64 {
	if !r.Finished {
		return math.Inf(1)
	}
	return r.FinishTime
}

// Player returns the human racer, or nil before Start.
func (s *Session) Player() *Racer {
	if p, ok := lo.Find(s.racers, func(r *Racer) bool { return r.IsPlayer }); ok {
		return p
	}
	if len(s.racers) > 0 {
		return s.racers[0]
	}
	return nil
}

// activePlayer returns the player if it is still racing.
func (s *Session) activePlayer() *Racer {
	p := s.Player()
	if p == nil || p.Finished {
		return nil
	}
	return p
}

// Throttle nudges the player forward and kicks up dust.
func (s *Session) Throttle() {
	p := s.activePlayer()
	if p == nil {
		return
	}
	p.VX = min(MaxSpeed, p.VX+Accel*p.AccelFactor()*ThrottleNudge)
	s.fx.Spawn(ParticleDust, p, IntensityNormal)
}

// Brake slows the player.
func (s *Session) Brake() {
	if p := s.activePlayer(); p != nil {
		p.VX = max(0, p.VX-Brake*BrakeNudge)
	}
}

// Jump launches the player if grounded.
func (s *Session) Jump() {
	p := s.activePlayer()
	if p == nil || !p.Grounded() {
		return
	}
	p.VY = JumpVel
	s.fx.Spawn(ParticleDust, p, IntensityStrong)
}

// ToggleEngine switches the player's engine.
func (s *Session) ToggleEngine() {
	if p := s.Player(); p != nil {
		p.EngineOn = !p.EngineOn
	}
}

// ReducedMotion reports whether the camera snaps instead of easing.
func (s *Session) ReducedMotion() bool { return s.reducedMotion }

// SetReducedMotion selects the camera mode.
func (s *Session) SetReducedMotion(on bool) { s.reducedMotion = on }

// SetViewWidth sets the camera viewport, never narrower than MinViewWidth.
func (s *Session) SetViewWidth(w int) {
	s.viewWidth = max(w, config.MinViewWidth)
}

// ViewWidth returns the camera viewport width.
func (s *Session) ViewWidth() int { return s.viewWidth }

// Clock returns the elapsed race time.
func (s *Session) Clock() float64 { return s.clock }

// Camera returns the world x at the left edge of the viewport.
func (s *Session) Camera() float64 { return s.camera }

// Track returns the current track.
func (s *Session) Track() *Track { return s.track }

// Bots returns the number of bots in the current race.
func (s *Session) Bots() int { return s.botCount }

// Ended reports whether every racer has finished.
func (s *Session) Ended() bool { return s.ended }

// RaceID returns the identifier of the current race.
func (s *Session) RaceID() string { return s.raceID }

// Stats returns the current race record.
func (s *Session) Stats() stats.Stats { return s.book.Stats() }
