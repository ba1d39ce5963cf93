package game

import (
	"math"
	"math/rand"

	"github.com/arcadehall/tui-pong/internal/config"
	"github.com/arcadehall/tui-pong/internal/core"
)

// ParticleKind selects the aging policy for a particle.
type ParticleKind uint8

const (
	// ParticleTrail follows the ball; small gravity bias, no damping.
	ParticleTrail ParticleKind = iota
	// ParticleExplosion is the win burst; gravity plus velocity damping.
	ParticleExplosion
)

// Particle is an ephemeral visual element. Particles have no identity
// beyond membership in the system; order never matters.
type Particle struct {
	Pos   Vec2
	Vel   Vec2
	Color core.Color
	Age   float64 // Seconds lived so far
	Life  float64 // Seconds until retirement
	Size  float64
	Kind  ParticleKind
}

// ParticleSystem spawns, ages, and retires particles. Retirement
// compacts the backing slice in place so sustained play reuses the
// same arena instead of reallocating every tick.
type ParticleSystem struct {
	cfg       config.PongParticles
	rng       *rand.Rand
	dt        float64 // Simulated seconds per tick
	particles []Particle
}

// NewParticleSystem creates a particle system for the given tick rate.
func NewParticleSystem(cfg config.PongParticles, rng *rand.Rand, tickRate int) *ParticleSystem {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &ParticleSystem{
		cfg:       cfg,
		rng:       rng,
		dt:        1.0 / float64(tickRate),
		particles: make([]Particle, 0, cfg.TrailMax+cfg.ExplosionCount),
	}
}

// Reset discards all live particles, keeping the arena.
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Live returns the live particles for rendering. The slice is only
// valid until the next Tick or spawn call.
func (ps *ParticleSystem) Live() []Particle {
	return ps.particles
}

// SpawnTrail emits one trail particle at the ball's center. Velocity is
// inversely related to the ball's velocity plus random jitter. Spawning
// stops while the trail cap is reached, bounding memory during long rallies.
func (ps *ParticleSystem) SpawnTrail(center, ballVel Vec2, color core.Color) {
	if ps.trailCount() >= ps.cfg.TrailMax {
		return
	}

	jitter := Vec2{
		X: (ps.rng.Float64() - 0.5) * 0.3,
		Y: (ps.rng.Float64() - 0.5) * 0.3,
	}
	ps.particles = append(ps.particles, Particle{
		Pos:   center,
		Vel:   ballVel.Scale(-0.2).Add(jitter),
		Color: color,
		Life:  ps.lifeBetween(ps.cfg.TrailLifeMin, ps.cfg.TrailLifeMax),
		Size:  1,
		Kind:  ParticleTrail,
	})
}

// SpawnExplosion emits a burst of count particles radiating from center
// in uniform random directions. Any previous burst is cleared first, so
// at most one explosion is ever live.
func (ps *ParticleSystem) SpawnExplosion(center Vec2, count int, colors []core.Color) {
	ps.clearKind(ParticleExplosion)

	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 0.2 + ps.rng.Float64()*0.8
		color := core.ColorBrightYellow
		if len(colors) > 0 {
			color = colors[ps.rng.Intn(len(colors))]
		}
		ps.particles = append(ps.particles, Particle{
			Pos:   center,
			Vel:   Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Color: color,
			Life:  ps.lifeBetween(ps.cfg.ExplosionLifeMin, ps.cfg.ExplosionLifeMax),
			Size:  1,
			Kind:  ParticleExplosion,
		})
	}
}

// Tick ages every particle by one simulation step, integrates motion,
// and retires particles whose age has reached their lifetime. Explosion
// particles fall and slow down; trail particles only drift down slightly.
func (ps *ParticleSystem) Tick() {
	w := 0
	for i := range ps.particles {
		p := ps.particles[i]
		p.Age += ps.dt
		if p.Age >= p.Life {
			continue
		}

		switch p.Kind {
		case ParticleTrail:
			p.Vel.Y += ps.cfg.TrailGravity
		case ParticleExplosion:
			p.Vel.Y += ps.cfg.ExplosionGravity
			p.Vel = p.Vel.Scale(ps.cfg.ExplosionDamping)
		}
		p.Pos = p.Pos.Add(p.Vel)

		ps.particles[w] = p
		w++
	}
	ps.particles = ps.particles[:w]
}

// trailCount counts live trail particles.
func (ps *ParticleSystem) trailCount() int {
	n := 0
	for i := range ps.particles {
		if ps.particles[i].Kind == ParticleTrail {
			n++
		}
	}
	return n
}

// clearKind retires all particles of one kind in place.
func (ps *ParticleSystem) clearKind(kind ParticleKind) {
	w := 0
	for i := range ps.particles {
		if ps.particles[i].Kind != kind {
			ps.particles[w] = ps.particles[i]
			w++
		}
	}
	ps.particles = ps.particles[:w]
}

// lifeBetween picks a lifetime uniformly in [min, max].
func (ps *ParticleSystem) lifeBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + ps.rng.Float64()*(max-min)
}
