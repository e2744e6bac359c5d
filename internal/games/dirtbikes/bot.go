package dirtbikes

import (
	"math/rand"
	"sort"
)

// BotPolicy drives non-player racers: hold cruise speed, jump or brake
// for the next hazard in lane.
type BotPolicy struct {
	rng *rand.Rand
	fx  *ParticleSystem
}

// NewBotPolicy creates a policy sharing the session's rng and particles.
func NewBotPolicy(rng *rand.Rand, fx *ParticleSystem) *BotPolicy {
	return &BotPolicy{rng: rng, fx: fx}
}

// Apply runs one control step for r.
func (b *BotPolicy) Apply(r *Racer, track *Track, dt float64) {
	if r.VX < r.AI.TargetSpeed {
		r.VX = min(MaxSpeed, r.VX+Accel*r.AccelFactor()*dt)
	} else {
		r.coast(dt)
	}

	hazard, ok := NextHazard(track, r.Lane, r.X, r.AI.Lookahead)
	if !ok {
		return
	}

	chance := r.AI.JumpBias
	if hazard.Kind == ObstacleRamp {
		chance = max(RampJumpFloor, chance+RampJumpBonus)
	}
	if r.Grounded() && b.rng.Float64() < chance {
		r.VY = JumpVel * uniform(b.rng, 0.9, 1.1)
		b.fx.Spawn(ParticleDust, r, IntensityNormal)
	}

	r.VX = max(0, r.VX-Brake*HazardBrakeFactor*dt)
}

// NextHazard returns the nearest obstacle in lane with x <= o.X < x+lookahead.
func NextHazard(track *Track, lane int, x, lookahead float64) (Obstacle, bool) {
	obs := track.ObstaclesInLane(lane)
	i := sort.Search(len(obs), func(i int) bool { return obs[i].X >= x })
	if i < len(obs) && obs[i].X < x+lookahead {
		return obs[i], true
	}
	return Obstacle{}, false
}
