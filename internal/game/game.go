package game

import (
	"fmt"
	"math/rand"

	"github.com/arcadehall/tui-pong/internal/config"
	"github.com/arcadehall/tui-pong/internal/core"
	"github.com/arcadehall/tui-pong/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Match phases
const (
	PhaseServing  = "serving"  // Ball held beside the serving paddle
	PhaseRallying = "rallying" // Ball in play
	PhaseScored   = "scored"   // Transient: score bookkeeping, same tick
	PhaseMatchWon = "matchwon" // Terminal until restart
)

// Side identifies a player side.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns "left", "right", or "none".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// cpuSkill scales the CPU paddle speed in solo mode. The CPU only ever
// follows the ball; it never predicts.
const cpuSkill = 0.75

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Pong match: input sampling, paddle motion, ball
// physics, collision resolution, particles, scoring, and the win sequence.
type Game struct {
	solo bool // Right paddle is CPU-controlled

	// Entities
	left  *Paddle
	right *Paddle
	ball  *Ball

	particles *ParticleSystem
	resolver  *Resolver

	// Match state
	phase      string
	scoreLeft  int
	scoreRight int
	server     Side // Side that serves next
	winner     Side
	paused     bool
	tickCount  int
	lastImpact Vec2 // Ball center at the last score/win, explosion origin

	// Presentation settings, preserved across restarts
	settings Settings

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.PongConfig
	field   Field
	rng     *rand.Rand

	events []core.Event // Per-tick scratch
}

// New creates a two-player Pong game.
func New() *Game {
	return &Game{settings: DefaultSettings()}
}

// NewSolo creates a Pong game with a CPU-controlled right paddle.
func NewSolo() *Game {
	return &Game{solo: true, settings: DefaultSettings()}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	if g.solo {
		return "pong-solo"
	}
	return "pong"
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	if g.solo {
		return "Pong vs CPU"
	}
	return "Pong"
}

// Reset initializes or restarts the match. Presentation settings
// (palette, mute) survive resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	g.cfg = cfg

	// Row 0 is the HUD; the bottom row is the lower wall.
	g.field = Field{
		Left:   0,
		Right:  float64(runtime.ScreenW),
		Top:    1,
		Bottom: float64(runtime.ScreenH - 1),
	}

	paddleH := cfg.Paddles.Height
	if paddleH <= 0 {
		paddleH = core.Clamp(runtime.ScreenH/5, 3, 7)
	}
	paddleW := core.Max(cfg.Paddles.Width, 1)
	centerY := (g.field.Top + g.field.Bottom) / 2

	g.left = &Paddle{
		Pos:       Vec2{X: float64(cfg.Paddles.Offset), Y: centerY - float64(paddleH)/2},
		W:         float64(paddleW),
		H:         float64(paddleH),
		Smoothing: cfg.Paddles.Smoothing,
	}
	g.right = &Paddle{
		Pos: Vec2{
			X: float64(runtime.ScreenW - cfg.Paddles.Offset - paddleW),
			Y: centerY - float64(paddleH)/2,
		},
		W:         float64(paddleW),
		H:         float64(paddleH),
		Smoothing: cfg.Paddles.Smoothing,
	}

	g.ball = &Ball{Size: 1}
	g.particles = NewParticleSystem(cfg.Particles, g.rng, runtime.TickRate)
	g.resolver = NewResolver(cfg.Physics, cfg.Paddles, g.rng)

	g.scoreLeft = 0
	g.scoreRight = 0
	g.winner = SideNone
	g.paused = false
	g.tickCount = 0
	g.events = g.events[:0]

	// Opening serve from a random side.
	g.server = SideLeft
	if g.rng.Intn(2) == 1 {
		g.server = SideRight
	}
	g.beginServe()
}

// beginServe resets the ball for the current server and enters Serving.
func (g *Game) beginServe() {
	g.phase = PhaseServing
	dir := 0
	if g.server == SideLeft {
		dir = 1
	} else if g.server == SideRight {
		dir = -1
	}
	g.resetBall(dir)
}

// resetBall centers the ball and assigns its serve velocity. dir is the
// requested horizontal direction (+1 right, -1 left, 0 random sign).
func (g *Game) resetBall(dir int) {
	g.ball.SetCenter(Vec2{
		X: (g.field.Left + g.field.Right) / 2,
		Y: (g.field.Top + g.field.Bottom) / 2,
	})

	speed := g.cfg.Physics.BallSpeed
	vx := speed
	if dir < 0 || (dir == 0 && g.rng.Intn(2) == 0) {
		vx = -speed
	}
	vy := (0.15 + g.rng.Float64()*0.3) * speed
	if g.rng.Intn(2) == 0 {
		vy = -vy
	}

	g.ball.Vel = Vec2{X: vx, Y: vy}
	g.ball.Spin = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	// Presentation toggles work in every phase, paused included.
	if in.Has(core.ActionPalette) {
		g.settings.CyclePalette()
	}
	if in.Has(core.ActionMute) {
		g.settings.ToggleSound()
	}

	if in.Has(core.ActionPause) && g.phase != PhaseMatchWon {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tickCount++

	if g.phase == PhaseMatchWon {
		// Keep the explosion animating; wait for restart.
		g.particles.Tick()
		if in.Has(core.ActionRestart) || in.Has(core.ActionServe) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	g.steerPaddles(in)

	switch g.phase {
	case PhaseServing:
		g.holdBallAtServer()
		if in.Has(core.ActionServe) {
			g.phase = PhaseRallying
		}
	case PhaseRallying:
		g.ball.Advance(g.cfg.Physics)
		g.events = append(g.events, g.resolver.Resolve(g.ball, g.left, g.right, g.field)...)
		g.particles.SpawnTrail(g.ball.Center(), g.ball.Vel, g.settings.Palette().Trail)
		g.checkExit()
	}

	g.particles.Tick()
	return g.result()
}

// steerPaddles applies held directional input to both paddles and
// clamps them to the field.
func (g *Game) steerPaddles(in core.InputFrame) {
	speed := g.cfg.Paddles.Speed

	dirL := 0.0
	if in.Has(core.ActionLeftUp) {
		dirL -= 1
	}
	if in.Has(core.ActionLeftDown) {
		dirL += 1
	}
	g.left.Steer(dirL, speed)
	g.left.Move(g.field.Top, g.field.Bottom)

	if g.solo {
		g.steerCPU()
	} else {
		dirR := 0.0
		if in.Has(core.ActionRightUp) {
			dirR -= 1
		}
		if in.Has(core.ActionRightDown) {
			dirR += 1
		}
		g.right.Steer(dirR, speed)
	}
	g.right.Move(g.field.Top, g.field.Bottom)
}

// steerCPU moves the right paddle toward the ball center. Follow only:
// the CPU idles while the ball travels away.
func (g *Game) steerCPU() {
	if g.phase == PhaseRallying && g.ball.Vel.X <= 0 {
		g.right.Steer(0, 0)
		return
	}

	diff := g.ball.Center().Y - g.right.Center().Y
	dir := 0.0
	if diff > 0.5 {
		dir = 1
	} else if diff < -0.5 {
		dir = -1
	}
	g.right.Steer(dir, g.cfg.Paddles.Speed*cpuSkill)
}

// holdBallAtServer pins the held ball beside the serving paddle,
// following the paddle's vertical position.
func (g *Game) holdBallAtServer() {
	offset := float64(g.cfg.Gameplay.ServeOffset)
	switch g.server {
	case SideRight:
		g.ball.Pos.X = g.right.Pos.X - offset - g.ball.Size
	default:
		g.ball.Pos.X = g.left.Pos.X + g.left.W + offset
	}
	paddle := g.left
	if g.server == SideRight {
		paddle = g.right
	}
	g.ball.SetCenter(Vec2{X: g.ball.Center().X, Y: paddle.Center().Y})
}

// checkExit scores when the ball has fully left the field horizontally.
func (g *Game) checkExit() {
	if g.ball.Pos.X+g.ball.Size < g.field.Left {
		g.scoreAgainst(SideLeft)
	} else if g.ball.Pos.X > g.field.Right {
		g.scoreAgainst(SideRight)
	}
}

// scoreAgainst records a point against the given side. The side scored
// against serves next, toward the opponent. Reaching the win threshold
// fires the explosion once and ends the match.
func (g *Game) scoreAgainst(side Side) {
	g.phase = PhaseScored
	g.lastImpact = g.ball.Center()
	g.events = append(g.events, core.EventScore)

	var score int
	if side == SideLeft {
		g.scoreRight++
		score = g.scoreRight
		g.winner = SideRight
	} else {
		g.scoreLeft++
		score = g.scoreLeft
		g.winner = SideLeft
	}

	if score >= g.cfg.Gameplay.WinScore {
		g.phase = PhaseMatchWon
		g.particles.SpawnExplosion(g.lastImpact, g.cfg.Particles.ExplosionCount, g.settings.Palette().Burst)
		g.events = append(g.events, core.EventMatchWon)
		return
	}

	g.winner = SideNone
	g.server = side
	g.beginServe()
}

// result assembles the step result for the platform.
func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// SoundEnabled reports whether the session's sound setting is on.
// The platform polls this after every step; the audio sink never
// observes settings state directly.
func (g *Game) SoundEnabled() bool {
	return g.settings.SoundOn
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		ScoreLeft:  g.scoreLeft,
		ScoreRight: g.scoreRight,
		MatchOver:  g.phase == PhaseMatchWon,
		Paused:     g.paused,
	}
}

// Winner returns the winning side, or SideNone while the match runs.
func (g *Game) Winner() Side {
	if g.phase != PhaseMatchWon {
		return SideNone
	}
	return g.winner
}

// Ticks returns the number of simulation ticks since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	pal := g.settings.Palette()

	centerX := dst.Width() / 2

	// Net
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetCell(centerX, y, NetChar, pal.Net)
	}

	// Particles under everything else
	for _, p := range g.particles.Live() {
		dst.SetCell(int(p.Pos.X), int(p.Pos.Y), particleGlyph(p), p.Color)
	}

	// Paddles
	g.renderPaddle(dst, g.left, pal.Paddle)
	g.renderPaddle(dst, g.right, pal.Paddle)

	// Ball
	if g.phase != PhaseMatchWon {
		dst.SetCell(int(g.ball.Pos.X), int(g.ball.Pos.Y), BallChar, pal.Ball)
	}

	// HUD
	dst.DrawTextColored(centerX-5, 0, fmt.Sprintf("%d", g.scoreLeft), pal.Text)
	dst.DrawTextColored(centerX+4, 0, fmt.Sprintf("%d", g.scoreRight), pal.Text)
	dst.DrawTextColored(1, 0, "P1", pal.Text)
	rightLabel := "P2"
	if g.solo {
		rightLabel = "CPU"
	}
	dst.DrawTextColored(dst.Width()-len(rightLabel)-1, 0, rightLabel, pal.Text)
	if !g.settings.SoundOn {
		dst.DrawTextColored(centerX-2, dst.Height()-1, "MUTE", core.ColorGray)
	}

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == PhaseServing:
		dst.DrawTextCentered(dst.Height()-1, "SPACE to serve")
	case g.phase == PhaseMatchWon:
		msg := "LEFT WINS!"
		if g.winner == SideRight {
			msg = "RIGHT WINS!"
			if g.solo {
				msg = "CPU WINS!"
			}
		}
		g.drawCenteredMessage(dst, msg,
			fmt.Sprintf("%d - %d  |  Press R to restart", g.scoreLeft, g.scoreRight))
	}
}

// renderPaddle draws a paddle column.
func (g *Game) renderPaddle(dst *core.Screen, p *Paddle, color core.Color) {
	x := int(p.Pos.X)
	y := int(p.Pos.Y)
	for w := 0; w < int(p.W); w++ {
		dst.DrawVLine(x+w, y, int(p.H), PaddleChar, color)
	}
}

// particleGlyph fades particles out as they age.
func particleGlyph(p Particle) rune {
	frac := p.Age / p.Life
	if p.Kind == ParticleExplosion {
		switch {
		case frac < 0.33:
			return '*'
		case frac < 0.66:
			return '+'
		default:
			return '.'
		}
	}
	if frac < 0.5 {
		return '•'
	}
	return '·'
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Register the variants with the registry.
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
	registry.Register("pong-solo", func() registry.Game {
		return NewSolo()
	})
}
