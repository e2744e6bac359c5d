package dirtbikes

import "github.com/vovakirdan/tui-dirtbikes/internal/core"

// Outcome reports what happened to a racer during one physics step.
type Outcome struct {
	Hits     []ObstacleKind
	Finished bool
}

// Physics integrates racer motion and resolves obstacle contacts.
type Physics struct {
	fx *ParticleSystem
}

// NewPhysics creates an engine that emits effects into fx.
func NewPhysics(fx *ParticleSystem) *Physics {
	return &Physics{fx: fx}
}

// Step advances r by dt after its control input has been applied.
// clock is the race time recorded on finish.
func (p *Physics) Step(r *Racer, track *Track, clock, dt float64) Outcome {
	var out Outcome

	r.VY -= Gravity * dt
	r.Y += r.VY * dt
	if r.Y <= 0 {
		r.Y = 0
		r.VY = 0
	}

	r.VX = core.ClampF(r.VX, 0, MaxSpeed)
	r.X += r.VX * dt

	if r.Grounded() {
		out.Hits = p.collide(r, track)
	}

	if r.X >= track.Length {
		r.Finished = true
		r.FinishTime = clock
		out.Finished = true
		if r.IsPlayer {
			p.fx.Spawn(ParticleConfetti, r, IntensityNormal)
		}
	}

	return out
}

// collide applies every obstacle within ContactRange. Overlapping
// obstacles stack their penalties.
func (p *Physics) collide(r *Racer, track *Track) []ObstacleKind {
	var hits []ObstacleKind
	for _, o := range track.ObstaclesInLane(r.Lane) {
		if o.X-r.X >= ContactRange {
			break
		}
		if r.X-o.X >= ContactRange {
			continue
		}

		switch o.Kind {
		case ObstacleRock:
			r.VX = max(0, r.VX-RockPenalty)
			p.fx.Spawn(ParticleSpark, r, IntensityStrong)
		case ObstacleLog:
			r.VX = max(0, r.VX-LogPenalty)
			p.fx.Spawn(ParticleSpark, r, IntensityNormal)
		case ObstacleRamp:
			r.VY = JumpVel * RampBoost
			p.fx.Spawn(ParticleDust, r, IntensityStrong)
		}
		hits = append(hits, o.Kind)
	}
	return hits
}
