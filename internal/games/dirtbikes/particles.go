package dirtbikes

import (
	"math/rand"

	"github.com/vovakirdan/tui-dirtbikes/internal/core"
)

// ParticleKind identifies a visual effect.
type ParticleKind int

const (
	ParticleDust ParticleKind = iota
	ParticleSpark
	ParticleConfetti
)

// String returns the kind name.
func (k ParticleKind) String() string {
	switch k {
	case ParticleDust:
		return "dust"
	case ParticleSpark:
		return "spark"
	case ParticleConfetti:
		return "confetti"
	default:
		return "unknown"
	}
}

// Intensity selects the size of a burst.
type Intensity int

const (
	IntensityNormal Intensity = iota
	IntensityStrong
)

// Particle is a short-lived decorative glyph.
type Particle struct {
	Kind   ParticleKind
	X, Y   float64
	VX, VY float64
	TTL    float64
	Glyph  rune
	Color  core.Color
	Lane   int // lane of the racer that emitted it
}

// ParticleSystem owns every live particle of a session.
type ParticleSystem struct {
	rng       *rand.Rand
	theme     Theme
	particles []Particle
}

// NewParticleSystem creates an empty system drawing randomness from rng.
func NewParticleSystem(rng *rand.Rand, theme Theme) *ParticleSystem {
	return &ParticleSystem{rng: rng, theme: theme}
}

// Spawn emits a burst of kind at the origin racer.
// Sparks are rate-limited by the racer's cooldown.
func (ps *ParticleSystem) Spawn(kind ParticleKind, origin *Racer, in Intensity) {
	switch kind {
	case ParticleDust:
		ps.dust(origin, in)
	case ParticleSpark:
		ps.sparks(origin, in)
	case ParticleConfetti:
		ps.confetti(origin)
	}
}

func (ps *ParticleSystem) dust(r *Racer, in Intensity) {
	n := randInt(ps.rng, 2, 5)
	if in == IntensityStrong {
		n += 4
	}
	for range n {
		ps.particles = append(ps.particles, Particle{
			Kind:  ParticleDust,
			X:     r.X - uniform(ps.rng, 0.5, 2.0),
			Y:     0,
			VX:    -uniform(ps.rng, 8, 16),
			VY:    uniform(ps.rng, 0.5, 2.0),
			TTL:   uniform(ps.rng, 0.2, 0.6),
			Glyph: ps.theme.Dust,
			Color: core.ColorWhite,
			Lane:  r.Lane,
		})
	}
}

func (ps *ParticleSystem) sparks(r *Racer, in Intensity) {
	if r.SparkCooldown > 0 {
		return
	}
	r.SparkCooldown = SparkCooldown

	n := randInt(ps.rng, 1, 4)
	if in == IntensityStrong {
		n = randInt(ps.rng, 2, 5)
	}
	for range n {
		ps.particles = append(ps.particles, Particle{
			Kind:  ParticleSpark,
			X:     r.X + uniform(ps.rng, -0.3, 0.3),
			Y:     0.2,
			VX:    uniform(ps.rng, -6, 6),
			VY:    uniform(ps.rng, 2, 5),
			TTL:   uniform(ps.rng, 0.2, 0.5),
			Glyph: ps.theme.Spark,
			Color: colorDanger,
			Lane:  r.Lane,
		})
	}
}

func (ps *ParticleSystem) confetti(r *Racer) {
	for range ConfettiCount {
		ps.particles = append(ps.particles, Particle{
			Kind:  ParticleConfetti,
			X:     r.X,
			Y:     1.0,
			VX:    uniform(ps.rng, -10, 10),
			VY:    uniform(ps.rng, 2, 8),
			TTL:   uniform(ps.rng, 0.4, 1.2),
			Glyph: ps.theme.Confetti,
			Color: confettiPalette[ps.rng.Intn(len(confettiPalette))],
			Lane:  r.Lane,
		})
	}
}

// Tick ages and moves every particle. Expired particles are dropped.
func (ps *ParticleSystem) Tick(dt float64) {
	next := make([]Particle, 0, len(ps.particles))
	for _, p := range ps.particles {
		p.TTL -= dt
		if p.TTL <= 0 {
			continue
		}
		p.VY -= Gravity * ParticleGravity * dt
		p.X += p.VX * dt
		p.Y = max(0, p.Y+p.VY*dt)
		next = append(next, p)
	}
	ps.particles = next
}

// Particles returns a copy of the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = nil
}
