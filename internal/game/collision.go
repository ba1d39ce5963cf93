package game

import (
	"math"
	"math/rand"

	"github.com/arcadehall/tui-pong/internal/config"
	"github.com/arcadehall/tui-pong/internal/core"
)

// Field is the playable area in cell coordinates. Top is below the HUD
// row; Bottom, Left and Right are exclusive bounds.
type Field struct {
	Left, Right float64
	Top, Bottom float64
}

// minBounceSpeed is the threshold below which a post-bounce horizontal
// velocity is treated as a stall and reassigned a random-signed serve
// speed. Guards against the degenerate zero-velocity rally.
const minBounceSpeed = 0.05

// Resolver detects and resolves ball collisions for one tick, in fixed
// order: top/bottom boundary, left paddle, right paddle. Boundary and
// paddle checks are independent; a ball in a corner can bounce off both
// a wall and a paddle in the same tick.
type Resolver struct {
	phys    config.PongPhysics
	paddles config.PongPaddles
	rng     *rand.Rand
}

// NewResolver creates a resolver sharing the game's RNG for the
// zero-velocity stall correction.
func NewResolver(phys config.PongPhysics, paddles config.PongPaddles, rng *rand.Rand) *Resolver {
	return &Resolver{phys: phys, paddles: paddles, rng: rng}
}

// Resolve runs all collision checks for the tick and returns the events
// that fired. Ball and paddle state are corrected in place.
func (r *Resolver) Resolve(b *Ball, left, right *Paddle, field Field) []core.Event {
	var events []core.Event

	if r.resolveWalls(b, field) {
		events = append(events, core.EventWallHit)
	}
	if r.resolvePaddle(b, left, false) {
		events = append(events, core.EventPaddleHit)
	}
	if r.resolvePaddle(b, right, true) {
		events = append(events, core.EventPaddleHit)
	}

	if len(events) > 0 {
		// Same drag and cap as Ball.Advance, with the same constants.
		b.Vel = b.Vel.Scale(r.phys.Drag).ClampLen(r.phys.MaxSpeed)
	}
	return events
}

// resolveWalls clamps the ball to the top/bottom boundary and inverts
// the vertical velocity. A wall hit slightly boosts speed and bleeds spin.
func (r *Resolver) resolveWalls(b *Ball, field Field) bool {
	hit := false

	if b.Pos.Y <= field.Top {
		b.Pos.Y = field.Top
		b.Vel.Y = -b.Vel.Y
		hit = true
	}
	if b.Pos.Y+b.Size >= field.Bottom {
		b.Pos.Y = field.Bottom - b.Size
		b.Vel.Y = -b.Vel.Y
		hit = true
	}

	if hit {
		b.Vel = b.Vel.Scale(r.phys.WallBoost)
		b.Spin *= r.phys.SpinDecay
	}
	return hit
}

// resolvePaddle resolves a ball-paddle overlap. The check only fires
// when the ball travels toward the paddle, which prevents re-resolving
// the same contact while the boxes still overlap after a bounce.
func (r *Resolver) resolvePaddle(b *Ball, p *Paddle, rightSide bool) bool {
	if rightSide {
		if b.Vel.X <= 0 {
			return false
		}
	} else {
		if b.Vel.X >= 0 {
			return false
		}
	}

	if !overlaps(b, p) {
		return false
	}

	// Clamp the ball's leading edge to the paddle face.
	if rightSide {
		b.Pos.X = p.Pos.X - b.Size
	} else {
		b.Pos.X = p.Pos.X + p.W
	}

	// Elastic bounce: invert and scale for the arcade speed-up.
	b.Vel.X = -b.Vel.X * r.phys.Elasticity

	// Spin from paddle motion plus the vertical offset between centers.
	offset := (b.Center().Y - p.Center().Y) / (p.H / 2)
	b.Spin += r.phys.SpinFactor * (p.Vel + offset)

	// The paddle recoils against the ball's vertical travel.
	p.Vel -= r.paddles.Recoil * b.Vel.Y

	// Stall correction: a bounce must never leave the ball drifting
	// vertically with no horizontal speed.
	if math.Abs(b.Vel.X) < minBounceSpeed {
		b.Vel.X = r.phys.BallSpeed
		if r.rng.Intn(2) == 0 {
			b.Vel.X = -b.Vel.X
		}
	}

	return true
}

// overlaps reports AABB overlap between the ball and a paddle.
func overlaps(b *Ball, p *Paddle) bool {
	if b.Pos.X >= p.Pos.X+p.W || p.Pos.X >= b.Pos.X+b.Size {
		return false
	}
	if b.Pos.Y >= p.Pos.Y+p.H || p.Pos.Y >= b.Pos.Y+b.Size {
		return false
	}
	return true
}
