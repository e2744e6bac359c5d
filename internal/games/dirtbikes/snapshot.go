package dirtbikes

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-dirtbikes/internal/stats"
)

// Snapshot is a read-only copy of everything a frame needs.
// Slices are owned by the snapshot; later ticks do not touch them.
type Snapshot struct {
	State         State
	Countdown     int // 3, 2, 1, then 0 for GO
	Clock         float64
	Camera        float64
	ViewWidth     int
	TrackLength   float64
	Lanes         int
	Obstacles     []Obstacle
	Racers        []Racer
	Particles     []Particle
	Standings     []Standing
	Bots          int // bots selected for the next race
	ReducedMotion bool
	Stats         stats.Stats
}

// Player returns the player's racer from the snapshot.
func (s Snapshot) Player() (Racer, bool) {
	return lo.Find(s.Racers, func(r Racer) bool { return r.IsPlayer })
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	track := s.Track()

	return Snapshot{
		State:         g.state,
		Countdown:     CountdownPhase(g.countdown),
		Clock:         s.Clock(),
		Camera:        s.Camera(),
		ViewWidth:     s.ViewWidth(),
		TrackLength:   track.Length,
		Lanes:         track.Lanes,
		Obstacles:     track.Obstacles(),
		Racers:        lo.Map(s.racers, func(r *Racer, _ int) Racer { return *r }),
		Particles:     s.fx.Particles(),
		Standings:     s.Standings(),
		Bots:          g.bots,
		ReducedMotion: s.ReducedMotion(),
		Stats:         s.Stats(),
	}
}
