package dirtbikes

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

func newTestParticles(seed int64) *ParticleSystem {
	return NewParticleSystem(rand.New(rand.NewSource(seed)), DefaultTheme())
}

func TestDustBurstSizes(t *testing.T) {
	tests := []struct {
		name     string
		in       Intensity
		min, max int
	}{
		{"normal", IntensityNormal, 2, 5},
		{"strong", IntensityStrong, 6, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestParticles(1)
			r := &Racer{X: 50, Lane: 1}
			for range 200 {
				ps.Clear()
				ps.Spawn(ParticleDust, r, tt.in)
				if n := ps.Len(); n < tt.min || n > tt.max {
					t.Fatalf("dust burst of %d, want %d..%d", n, tt.min, tt.max)
				}
			}
		})
	}
}

func TestDustTrailsBehind(t *testing.T) {
	ps := newTestParticles(2)
	ps.Spawn(ParticleDust, &Racer{X: 50, Lane: 3}, IntensityStrong)

	for _, p := range ps.Particles() {
		if p.X >= 50 || p.VX >= 0 || p.VY <= 0 {
			t.Errorf("dust should trail backwards and rise: %+v", p)
		}
		if p.TTL < 0.2 || p.TTL >= 0.6 {
			t.Errorf("dust ttl %.2f outside [0.2, 0.6)", p.TTL)
		}
		if p.Lane != 3 {
			t.Errorf("dust lane = %d, want 3", p.Lane)
		}
	}
}

func TestSparkCooldownGatesBursts(t *testing.T) {
	ps := newTestParticles(3)
	r := &Racer{X: 10}

	ps.Spawn(ParticleSpark, r, IntensityStrong)
	first := ps.Len()
	if first < 2 || first > 5 {
		t.Fatalf("strong spark burst of %d, want 2..5", first)
	}
	if r.SparkCooldown != SparkCooldown {
		t.Errorf("cooldown = %.2f, want %.2f", r.SparkCooldown, SparkCooldown)
	}

	ps.Spawn(ParticleSpark, r, IntensityNormal)
	if ps.Len() != first {
		t.Errorf("spark spawned during cooldown: %d particles, want %d", ps.Len(), first)
	}

	r.SparkCooldown = 0
	ps.Spawn(ParticleSpark, r, IntensityNormal)
	if added := ps.Len() - first; added < 1 || added > 4 {
		t.Errorf("normal spark burst of %d, want 1..4", added)
	}
}

func TestConfettiBurst(t *testing.T) {
	ps := newTestParticles(4)
	ps.Spawn(ParticleConfetti, &Racer{X: 1200}, IntensityNormal)

	if ps.Len() != ConfettiCount {
		t.Fatalf("confetti burst of %d, want %d", ps.Len(), ConfettiCount)
	}
	for _, p := range ps.Particles() {
		if p.Kind != ParticleConfetti {
			t.Errorf("unexpected kind %s", p.Kind)
		}
		if !slices.Contains(confettiPalette[:], p.Color) {
			t.Errorf("confetti color %v not in palette", p.Color)
		}
		if p.TTL < 0.4 || p.TTL >= 1.2 {
			t.Errorf("confetti ttl %.2f outside [0.4, 1.2)", p.TTL)
		}
	}
}

func TestTickNeverRetainsExpired(t *testing.T) {
	ps := newTestParticles(5)
	r := &Racer{X: 100}
	for range 20 {
		ps.Spawn(ParticleDust, r, IntensityStrong)
		ps.Spawn(ParticleConfetti, r, IntensityNormal)
	}

	for tick := 0; ps.Len() > 0; tick++ {
		if tick > 100 {
			t.Fatal("particles never expired")
		}
		ps.Tick(0.05)
		for _, p := range ps.Particles() {
			if p.TTL <= 0 {
				t.Fatalf("tick %d retained expired particle %+v", tick, p)
			}
		}
	}
}

func TestTickIntegratesMotion(t *testing.T) {
	ps := newTestParticles(6)
	ps.particles = []Particle{
		{X: 0, Y: 0.5, VX: 2, VY: 1, TTL: 1},
		{X: 0, Y: 0, VX: 0, VY: -5, TTL: 1},
	}

	ps.Tick(0.1)
	got := ps.Particles()

	wantVY := 1 - Gravity*ParticleGravity*0.1
	if math.Abs(got[0].VY-wantVY) > 1e-9 {
		t.Errorf("VY = %.4f, want %.4f", got[0].VY, wantVY)
	}
	if math.Abs(got[0].X-0.2) > 1e-9 {
		t.Errorf("X = %.4f, want 0.2", got[0].X)
	}
	if math.Abs(got[0].Y-(0.5+wantVY*0.1)) > 1e-9 {
		t.Errorf("Y = %.4f, want %.4f", got[0].Y, 0.5+wantVY*0.1)
	}
	if got[1].Y != 0 {
		t.Errorf("falling particle Y = %.4f, want floor at 0", got[1].Y)
	}
	if math.Abs(got[0].TTL-0.9) > 1e-9 {
		t.Errorf("TTL = %.4f, want 0.9", got[0].TTL)
	}
}

func TestParticlesReturnsCopy(t *testing.T) {
	ps := newTestParticles(7)
	ps.Spawn(ParticleConfetti, &Racer{}, IntensityNormal)

	snap := ps.Particles()
	snap[0].TTL = -1
	if ps.Particles()[0].TTL <= 0 {
		t.Error("mutating the returned slice changed the system")
	}
}
