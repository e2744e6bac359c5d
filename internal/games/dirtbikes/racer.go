package dirtbikes

import (
	"fmt"
	"math/rand"
)

// PlayerName is the display name of the human racer.
const PlayerName = "YOU"

// BotParams are sampled once per bot and fixed for its lifetime.
type BotParams struct {
	TargetSpeed float64 // cruise speed
	Lookahead   float64 // hazard scan distance
	JumpBias    float64 // probability of jumping a hazard per tick
}

// Racer is one bike on the track.
type Racer struct {
	Name          string
	IsPlayer      bool
	Lane          int
	X, Y          float64 // progress and height above ground
	VX, VY        float64
	Finished      bool
	FinishTime    float64
	EngineOn      bool
	SparkCooldown float64
	AI            BotParams
}

// NewPlayer creates the human racer at the start line.
func NewPlayer(lane int) *Racer {
	return &Racer{Name: PlayerName, IsPlayer: true, Lane: lane, EngineOn: true}
}

// NewBot creates a bot with freshly sampled driving parameters.
func NewBot(index, lane int, rng *rand.Rand) *Racer {
	return &Racer{
		Name:     fmt.Sprintf("BOT-%d", index+1),
		Lane:     lane,
		EngineOn: true,
		AI: BotParams{
			TargetSpeed: uniform(rng, 32, 52),
			Lookahead:   uniform(rng, 10, 24),
			JumpBias:    uniform(rng, 0.35, 0.75),
		},
	}
}

// Grounded reports whether the racer touches the ground.
func (r *Racer) Grounded() bool {
	return r.Y <= GroundEpsilon
}

// AccelFactor scales acceleration by engine state.
func (r *Racer) AccelFactor() float64 {
	if r.EngineOn {
		return 1.0
	}
	return EngineOffFactor
}

// coast applies rolling friction.
func (r *Racer) coast(dt float64) {
	if r.VX > 0 {
		r.VX = max(0, r.VX-Friction*dt)
	}
}
