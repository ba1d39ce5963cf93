package game

import (
	"math/rand"
	"testing"

	"github.com/arcadehall/tui-pong/internal/config"
	"github.com/arcadehall/tui-pong/internal/core"
)

func testParticleConfig() config.PongParticles {
	return config.PongParticles{
		TrailLifeMin:     0.5,
		TrailLifeMax:     0.5, // Fixed life keeps retirement deterministic
		TrailGravity:     0.01,
		TrailMax:         10,
		ExplosionCount:   20,
		ExplosionLifeMin: 1.0,
		ExplosionLifeMax: 1.0,
		ExplosionGravity: 0.05,
		ExplosionDamping: 0.98,
	}
}

func newTestParticles(cfg config.PongParticles) *ParticleSystem {
	return NewParticleSystem(cfg, rand.New(rand.NewSource(9)), 60)
}

func TestParticleAgingAndRetirement(t *testing.T) {
	ps := newTestParticles(testParticleConfig())

	ps.SpawnTrail(Vec2{X: 10, Y: 10}, Vec2{X: 1, Y: 0}, core.ColorGray)
	if ps.Len() != 1 {
		t.Fatalf("Expected 1 particle after spawn, got %d", ps.Len())
	}

	// 0.5s life at 60 ticks/s: alive well before the boundary,
	// gone shortly after
	for i := 0; i < 28; i++ {
		ps.Tick()
	}
	if ps.Len() != 1 {
		t.Errorf("Particle retired too early, len = %d", ps.Len())
	}

	prev := ps.Live()[0].Age
	if prev <= 0 {
		t.Errorf("Age should accumulate, got %f", prev)
	}

	for i := 0; i < 4; i++ {
		ps.Tick()
	}
	if ps.Len() != 0 {
		t.Errorf("Particle should retire at age >= life, len = %d", ps.Len())
	}
}

func TestParticleTrailCap(t *testing.T) {
	cfg := testParticleConfig()
	cfg.TrailMax = 3
	ps := newTestParticles(cfg)

	for i := 0; i < 10; i++ {
		ps.SpawnTrail(Vec2{X: 10, Y: 10}, Vec2{X: 1, Y: 0}, core.ColorGray)
	}

	if ps.Len() != 3 {
		t.Errorf("Trail spawns above the cap should be dropped, len = %d", ps.Len())
	}
}

func TestParticleExplosionReplacesPrevious(t *testing.T) {
	ps := newTestParticles(testParticleConfig())

	ps.SpawnExplosion(Vec2{X: 40, Y: 12}, 20, []core.Color{core.ColorBrightRed})
	if ps.Len() != 20 {
		t.Fatalf("Expected 20 explosion particles, got %d", ps.Len())
	}

	// A second burst clears the first instead of stacking
	ps.SpawnExplosion(Vec2{X: 10, Y: 5}, 20, []core.Color{core.ColorBrightRed})
	if ps.Len() != 20 {
		t.Errorf("Second explosion should replace the first, len = %d", ps.Len())
	}
}

func TestParticleExplosionKeepsTrail(t *testing.T) {
	ps := newTestParticles(testParticleConfig())

	ps.SpawnTrail(Vec2{X: 10, Y: 10}, Vec2{X: 1, Y: 0}, core.ColorGray)
	ps.SpawnExplosion(Vec2{X: 40, Y: 12}, 20, nil)

	if ps.Len() != 21 {
		t.Errorf("Explosion should not clear trail particles, len = %d", ps.Len())
	}
}

func TestParticleKindPolicies(t *testing.T) {
	cfg := testParticleConfig()
	ps := newTestParticles(cfg)

	ps.SpawnTrail(Vec2{X: 10, Y: 10}, Vec2{}, core.ColorGray)
	ps.SpawnExplosion(Vec2{X: 40, Y: 12}, 1, nil)

	burstVX := 0.0
	for _, p := range ps.Live() {
		if p.Kind == ParticleExplosion {
			burstVX = p.Vel.X
		}
	}

	ps.Tick()

	for _, p := range ps.Live() {
		switch p.Kind {
		case ParticleTrail:
			// Trail: only the small gravity bias
			if p.Vel.Y <= 0 {
				t.Errorf("Trail gravity should pull downward, Vel.Y = %f", p.Vel.Y)
			}
		case ParticleExplosion:
			// Damping shrinks the horizontal component, which gravity
			// never touches
			want := burstVX * cfg.ExplosionDamping
			if diff := p.Vel.X - want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Explosion Vel.X = %f, expected %f", p.Vel.X, want)
			}
		}
	}
}

func TestParticleReset(t *testing.T) {
	ps := newTestParticles(testParticleConfig())
	ps.SpawnExplosion(Vec2{X: 40, Y: 12}, 20, nil)

	ps.Reset()
	if ps.Len() != 0 {
		t.Errorf("Reset should discard all particles, len = %d", ps.Len())
	}
}
