package dirtbikes

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestPhysics(seed int64) (*Physics, *ParticleSystem) {
	fx := NewParticleSystem(rand.New(rand.NewSource(seed)), DefaultTheme())
	return NewPhysics(fx), fx
}

func TestJumpPeakHeight(t *testing.T) {
	phys, _ := newTestPhysics(1)
	track := NewTrack(TrackLength, Lanes, nil)
	r := &Racer{X: 0, VY: JumpVel}

	peak := 0.0
	for i := 0; i < 200; i++ {
		phys.Step(r, track, float64(i)*Tick, Tick)
		peak = max(peak, r.Y)
		if r.Grounded() && i > 0 {
			break
		}
	}

	want := JumpVel * JumpVel / (2 * Gravity)
	if math.Abs(peak-want) > JumpVel*Tick {
		t.Errorf("peak height %.3f, want %.3f ± %.3f", peak, want, JumpVel*Tick)
	}
	if r.Y != 0 || r.VY != 0 {
		t.Errorf("racer should land at rest vertically, got Y=%.3f VY=%.3f", r.Y, r.VY)
	}
}

func TestHorizontalClamp(t *testing.T) {
	phys, _ := newTestPhysics(2)
	track := NewTrack(TrackLength, Lanes, nil)

	fast := &Racer{VX: 100}
	phys.Step(fast, track, Tick, Tick)
	if fast.VX != MaxSpeed {
		t.Errorf("VX = %.2f, want clamp to %.0f", fast.VX, MaxSpeed)
	}
	if math.Abs(fast.X-MaxSpeed*Tick) > 1e-9 {
		t.Errorf("X = %.4f, want %.4f", fast.X, MaxSpeed*Tick)
	}

	reverse := &Racer{X: 5, VX: -3}
	phys.Step(reverse, track, Tick, Tick)
	if reverse.VX != 0 || reverse.X != 5 {
		t.Errorf("negative speed should clamp to 0 and hold position, got VX=%.2f X=%.2f", reverse.VX, reverse.X)
	}
}

func TestCollisions(t *testing.T) {
	tests := []struct {
		name      string
		obstacles []Obstacle
		racer     Racer
		wantVX    float64
		wantHits  []ObstacleKind
		check     func(t *testing.T, r Racer, fx *ParticleSystem)
	}{
		{
			name:      "rock",
			obstacles: []Obstacle{{X: 100, Kind: ObstacleRock}},
			racer:     Racer{X: 100, VX: 15},
			wantVX:    3,
			wantHits:  []ObstacleKind{ObstacleRock},
			check: func(t *testing.T, r Racer, fx *ParticleSystem) {
				if n := fx.Len(); n < 2 || n > 5 {
					t.Errorf("rock sparks = %d, want 2..5", n)
				}
				if r.SparkCooldown != SparkCooldown {
					t.Errorf("cooldown = %.2f, want %.2f", r.SparkCooldown, SparkCooldown)
				}
			},
		},
		{
			name:      "log",
			obstacles: []Obstacle{{X: 100, Kind: ObstacleLog}},
			racer:     Racer{X: 100, VX: 15},
			wantVX:    6,
			wantHits:  []ObstacleKind{ObstacleLog},
			check: func(t *testing.T, r Racer, fx *ParticleSystem) {
				if n := fx.Len(); n < 1 || n > 4 {
					t.Errorf("log sparks = %d, want 1..4", n)
				}
			},
		},
		{
			name:      "penalty floors at zero",
			obstacles: []Obstacle{{X: 100, Kind: ObstacleRock}},
			racer:     Racer{X: 100, VX: 6},
			wantVX:    0,
			wantHits:  []ObstacleKind{ObstacleRock},
		},
		{
			name:      "ramp launches",
			obstacles: []Obstacle{{X: 100, Kind: ObstacleRamp}},
			racer:     Racer{X: 100, VX: 3},
			wantVX:    3,
			wantHits:  []ObstacleKind{ObstacleRamp},
			check: func(t *testing.T, r Racer, fx *ParticleSystem) {
				if r.VY != JumpVel*RampBoost {
					t.Errorf("VY = %.2f, want %.2f", r.VY, JumpVel*RampBoost)
				}
				if n := fx.Len(); n < 6 || n > 9 {
					t.Errorf("ramp dust = %d, want 6..9", n)
				}
			},
		},
		{
			name: "overlapping obstacles stack",
			obstacles: []Obstacle{
				{X: 100, Kind: ObstacleRock},
				{X: 100.5, Kind: ObstacleLog},
			},
			racer:    Racer{X: 99.8, VX: 30},
			wantVX:   9,
			wantHits: []ObstacleKind{ObstacleRock, ObstacleLog},
		},
		{
			name:      "out of contact range",
			obstacles: []Obstacle{{X: 100, Kind: ObstacleRock}},
			racer:     Racer{X: 98, VX: 15},
			wantVX:    15,
		},
		{
			name:      "airborne passes over",
			obstacles: []Obstacle{{X: 100, Kind: ObstacleRock}},
			racer:     Racer{X: 100, Y: 1, VX: 15},
			wantVX:    15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phys, fx := newTestPhysics(3)
			track := NewTrack(TrackLength, Lanes, tt.obstacles)
			r := tt.racer

			out := phys.Step(&r, track, Tick, Tick)

			if math.Abs(r.VX-tt.wantVX) > 1e-9 {
				t.Errorf("VX = %.4f, want %.4f", r.VX, tt.wantVX)
			}
			if diff := cmp.Diff(tt.wantHits, out.Hits); diff != "" {
				t.Errorf("hits mismatch (-want +got):\n%s", diff)
			}
			if tt.check != nil {
				tt.check(t, r, fx)
			}
		})
	}
}

func TestSparkCooldownAcrossTicks(t *testing.T) {
	phys, fx := newTestPhysics(4)
	track := NewTrack(TrackLength, Lanes, []Obstacle{
		{X: 100, Kind: ObstacleRock},
		{X: 101.5, Kind: ObstacleRock},
	})
	r := &Racer{X: 99.5, VX: 30}

	phys.Step(r, track, Tick, Tick)
	first := fx.Len()
	if first == 0 {
		t.Fatal("first rock produced no sparks")
	}

	r.VX = 30
	out := phys.Step(r, track, 2*Tick, Tick)
	if len(out.Hits) == 0 {
		t.Fatal("second rock not hit")
	}
	if fx.Len() != first {
		t.Errorf("sparks emitted during cooldown: %d -> %d", first, fx.Len())
	}
}

func TestFinishLine(t *testing.T) {
	phys, fx := newTestPhysics(5)
	track := NewTrack(TrackLength, Lanes, nil)

	bot := &Racer{X: TrackLength - 0.5, VX: 30}
	out := phys.Step(bot, track, 12.5, Tick)
	if !out.Finished || !bot.Finished || bot.FinishTime != 12.5 {
		t.Fatalf("bot should finish at clock 12.5: %+v", bot)
	}
	if fx.Len() != 0 {
		t.Errorf("bot finish spawned %d particles, want none", fx.Len())
	}

	player := &Racer{IsPlayer: true, X: TrackLength - 0.5, VX: 30}
	phys.Step(player, track, 13, Tick)
	if !player.Finished || player.FinishTime != 13 {
		t.Fatalf("player should finish at clock 13: %+v", player)
	}
	if fx.Len() != ConfettiCount {
		t.Errorf("player finish spawned %d particles, want %d confetti", fx.Len(), ConfettiCount)
	}
}
