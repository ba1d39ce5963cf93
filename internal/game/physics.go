// Package game implements the Pong match simulation: ball and paddle
// physics, collision resolution, particles, and the match state machine.
// Coordinates are float64 playfield cells; truncation to integer cells
// happens only at render time.
package game

import (
	"math"

	"github.com/arcadehall/tui-pong/internal/config"
)

// Vec2 is a 2D vector in playfield cell units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// ClampLen returns v with its magnitude limited to max.
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Ball is the match ball: a square bounding box with a velocity vector
// and an accumulated spin scalar.
type Ball struct {
	Pos  Vec2 // Top-left corner
	Size float64
	Vel  Vec2
	Spin float64
}

// Center returns the center of the ball's bounding box.
func (b *Ball) Center() Vec2 {
	return Vec2{X: b.Pos.X + b.Size/2, Y: b.Pos.Y + b.Size/2}
}

// SetCenter moves the ball so its center is at c.
func (b *Ball) SetCenter(c Vec2) {
	b.Pos = Vec2{X: c.X - b.Size/2, Y: c.Y - b.Size/2}
}

// Advance integrates one fixed tick of ball motion: position from
// velocity, spin drift on the vertical component, then drag and the
// speed cap. The collision resolver applies the same drag and cap
// constants after a bounce so the two never disagree.
func (b *Ball) Advance(phys config.PongPhysics) {
	b.Pos = b.Pos.Add(b.Vel)

	// Spin drifts the ball vertically and decays every tick.
	b.Vel.Y += b.Spin * phys.SpinDrift
	b.Spin *= phys.SpinDecay

	b.Vel = b.Vel.Scale(phys.Drag).ClampLen(phys.MaxSpeed)
}

// Paddle is a vertically moving paddle with velocity inertia.
type Paddle struct {
	Pos       Vec2 // Top-left corner
	W, H      float64
	Vel       float64 // Vertical velocity, cells per tick
	Smoothing float64 // Inertia coefficient in [0,1); 0 = instant response
}

// Center returns the center of the paddle.
func (p *Paddle) Center() Vec2 {
	return Vec2{X: p.Pos.X + p.W/2, Y: p.Pos.Y + p.H/2}
}

// Steer blends the held direction (-1, 0, +1) into the paddle velocity.
// With dir 0 the paddle coasts to a stop at the same rate.
func (p *Paddle) Steer(dir, speed float64) {
	p.Vel = p.Vel*p.Smoothing + dir*speed*(1-p.Smoothing)
}

// Move integrates the paddle position and clamps it to [top, bottom-H].
// Hitting a bound kills the velocity so the paddle doesn't fight the clamp.
func (p *Paddle) Move(top, bottom float64) {
	p.Pos.Y += p.Vel

	maxY := bottom - p.H
	if p.Pos.Y < top {
		p.Pos.Y = top
		p.Vel = 0
	} else if p.Pos.Y > maxY {
		p.Pos.Y = maxY
		p.Vel = 0
	}
}
