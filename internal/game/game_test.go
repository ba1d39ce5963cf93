package game

import (
	"strings"
	"testing"

	"github.com/arcadehall/tui-pong/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	if g.phase != PhaseServing {
		t.Errorf("Reset should enter the serving phase, got %q", g.phase)
	}
	if g.scoreLeft != 0 || g.scoreRight != 0 {
		t.Errorf("Reset should clear scores, got %d-%d", g.scoreLeft, g.scoreRight)
	}
	if g.winner != SideNone {
		t.Errorf("Reset should clear the winner, got %v", g.winner)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.server == SideNone {
		t.Error("Reset should pick an opening server")
	}

	// Paddles sit vertically centered in the field
	wantY := (g.field.Top+g.field.Bottom)/2 - g.left.H/2
	if g.left.Pos.Y != wantY || g.right.Pos.Y != wantY {
		t.Errorf("Paddles should start centered at %f, got left=%f right=%f",
			wantY, g.left.Pos.Y, g.right.Pos.Y)
	}
}

func TestGameServeHoldsBall(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	// While serving, the ball is pinned beside the serving paddle
	// and tracks its vertical position.
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionLeftDown, core.ActionRightDown))
	}

	paddle := g.left
	if g.server == SideRight {
		paddle = g.right
	}
	if diff := g.ball.Center().Y - paddle.Center().Y; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Held ball should track the serving paddle: ball %f, paddle %f",
			g.ball.Center().Y, paddle.Center().Y)
	}

	offset := float64(g.cfg.Gameplay.ServeOffset)
	if g.server == SideLeft {
		wantX := g.left.Pos.X + g.left.W + offset
		if g.ball.Pos.X != wantX {
			t.Errorf("Held ball X = %f, expected %f", g.ball.Pos.X, wantX)
		}
	} else {
		wantX := g.right.Pos.X - offset - g.ball.Size
		if g.ball.Pos.X != wantX {
			t.Errorf("Held ball X = %f, expected %f", g.ball.Pos.X, wantX)
		}
	}
}

func TestGameServeDirection(t *testing.T) {
	// The serve always travels toward the serving side's opponent.
	for seed := int64(1); seed <= 20; seed++ {
		g := New()
		g.Reset(testRuntime(seed))

		g.Step(frame(core.ActionServe))
		if g.phase != PhaseRallying {
			t.Fatalf("seed %d: serve should enter the rally, got %q", seed, g.phase)
		}

		switch g.server {
		case SideLeft:
			if g.ball.Vel.X <= 0 {
				t.Errorf("seed %d: left serve should travel right, Vel.X = %f", seed, g.ball.Vel.X)
			}
		case SideRight:
			if g.ball.Vel.X >= 0 {
				t.Errorf("seed %d: right serve should travel left, Vel.X = %f", seed, g.ball.Vel.X)
			}
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and input script must produce the same state, tick by tick.
	script := make([]core.InputFrame, 300)
	for i := range script {
		script[i] = core.NewInputFrame()
		if i == 0 {
			script[i].Set(core.ActionServe)
		}
		if i%7 < 3 {
			script[i].Set(core.ActionLeftDown)
		}
		if i%11 < 4 {
			script[i].Set(core.ActionRightUp)
		}
	}

	g1 := New()
	g1.Reset(testRuntime(12345))
	g2 := New()
	g2.Reset(testRuntime(12345))

	for i, in := range script {
		g1.Step(in)
		g2.Step(in.Clone())

		h1 := g1.Snapshot().Hash()
		h2 := g2.Snapshot().Hash()
		if h1 != h2 {
			t.Fatalf("Determinism failed at tick %d: %x != %x", i, h1, h2)
		}
	}
}

func TestGameDifferentSeedsDiverge(t *testing.T) {
	g1 := New()
	g1.Reset(testRuntime(1))
	g2 := New()
	g2.Reset(testRuntime(2))

	g1.Step(frame(core.ActionServe))
	g2.Step(frame(core.ActionServe))

	for i := 0; i < 120; i++ {
		g1.Step(core.NewInputFrame())
		g2.Step(core.NewInputFrame())
	}

	if g1.Snapshot().Hash() == g2.Snapshot().Hash() {
		t.Error("Different seeds should diverge within a rally")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.Step(frame(core.ActionServe))

	g.Step(frame(core.ActionPause))
	if !g.paused {
		t.Fatal("Pause action should pause the game")
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionLeftDown))
	}
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Simulation should not advance while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.paused {
		t.Error("Second pause action should resume")
	}
}

func TestGamePaletteAndMuteToggles(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	if !g.SoundEnabled() {
		t.Fatal("Sound should default to on")
	}

	g.Step(frame(core.ActionMute))
	if g.SoundEnabled() {
		t.Error("Mute action should turn sound off")
	}

	idx := g.settings.PaletteIndex
	g.Step(frame(core.ActionPalette))
	if g.settings.PaletteIndex == idx {
		t.Error("Palette action should advance the palette")
	}

	// Toggles keep working while paused
	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionMute))
	if !g.SoundEnabled() {
		t.Error("Mute toggle should work while paused")
	}
}

func TestGameScoringHandsServeToConceder(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.Step(frame(core.ActionServe))

	// Push the ball fully past the right edge: left scores,
	// right serves next.
	g.ball.Pos = Vec2{X: g.field.Right + 1, Y: 12}
	g.ball.Vel = Vec2{X: 1, Y: 0}

	result := g.Step(core.NewInputFrame())

	if g.scoreLeft != 1 || g.scoreRight != 0 {
		t.Errorf("Expected 1-0, got %d-%d", g.scoreLeft, g.scoreRight)
	}
	if g.server != SideRight {
		t.Errorf("Side scored against should serve next, server = %v", g.server)
	}
	if g.phase != PhaseServing {
		t.Errorf("Game should return to serving, phase = %q", g.phase)
	}

	found := false
	for _, e := range result.Events {
		if e == core.EventScore {
			found = true
		}
	}
	if !found {
		t.Errorf("Score should emit an event, got %v", result.Events)
	}
}

func TestGameWinThreshold(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.Step(frame(core.ActionServe))

	g.scoreLeft = g.cfg.Gameplay.WinScore - 1
	g.ball.Pos = Vec2{X: g.field.Right + 1, Y: 12}
	g.ball.Vel = Vec2{X: 1, Y: 0}

	result := g.Step(core.NewInputFrame())

	if g.phase != PhaseMatchWon {
		t.Fatalf("Reaching the win score should end the match, phase = %q", g.phase)
	}
	if g.Winner() != SideLeft {
		t.Errorf("Winner() = %v, expected SideLeft", g.Winner())
	}
	if !result.State.MatchOver {
		t.Error("State should report the match over")
	}
	if g.particles.Len() == 0 {
		t.Error("Winning should spawn the explosion burst")
	}

	found := false
	for _, e := range result.Events {
		if e == core.EventMatchWon {
			found = true
		}
	}
	if !found {
		t.Errorf("Win should emit a match-won event, got %v", result.Events)
	}

	// The ball takes no further part; paddles stay put.
	before := g.ball.Pos
	g.Step(core.NewInputFrame())
	if g.ball.Pos != before {
		t.Error("Ball should not move after the match is won")
	}
}

func TestGameRestartAfterWin(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	g.Step(frame(core.ActionServe))

	g.scoreLeft = g.cfg.Gameplay.WinScore - 1
	g.ball.Pos = Vec2{X: g.field.Right + 1, Y: 12}
	g.Step(core.NewInputFrame())

	// Settings survive the restart
	g.Step(frame(core.ActionMute))

	g.Step(frame(core.ActionRestart))

	if g.phase != PhaseServing {
		t.Errorf("Restart should begin a new match, phase = %q", g.phase)
	}
	if g.scoreLeft != 0 || g.scoreRight != 0 {
		t.Errorf("Restart should clear scores, got %d-%d", g.scoreLeft, g.scoreRight)
	}
	if g.SoundEnabled() {
		t.Error("Mute setting should survive the restart")
	}
}

func TestGameSoloCPUFollowsBall(t *testing.T) {
	g := NewSolo()
	g.Reset(testRuntime(42))
	g.Step(frame(core.ActionServe))

	// Ball approaching the CPU, well above the paddle center
	g.phase = PhaseRallying
	g.ball.SetCenter(Vec2{X: 60, Y: 3})
	g.ball.Vel = Vec2{X: 0.9, Y: 0}

	startY := g.right.Pos.Y
	for i := 0; i < 20; i++ {
		prevX := g.ball.Pos.X
		g.Step(core.NewInputFrame())
		// Keep the ball approaching and high so the CPU keeps chasing
		g.ball.Pos.X = prevX
		g.ball.Pos.Y = 2.5
		g.ball.Vel = Vec2{X: 0.9, Y: 0}
	}

	if g.right.Pos.Y >= startY {
		t.Errorf("CPU paddle should chase the ball upward, was %f now %f", startY, g.right.Pos.Y)
	}

	// Receding ball: the CPU coasts instead of chasing
	g.ball.Vel = Vec2{X: -0.9, Y: 0}
	g.right.Vel = 0
	y := g.right.Pos.Y
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
		g.ball.Vel = Vec2{X: -0.9, Y: 0}
		g.ball.Pos = Vec2{X: 40, Y: 2}
	}
	if g.right.Pos.Y != y {
		t.Errorf("CPU should idle while the ball recedes, moved from %f to %f", y, g.right.Pos.Y)
	}
}

func TestGamePaddleClampUnderHeldInput(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	for i := 0; i < 200; i++ {
		g.Step(frame(core.ActionLeftUp, core.ActionRightDown))
	}

	if g.left.Pos.Y < g.field.Top {
		t.Errorf("Left paddle escaped the top bound, Y = %f", g.left.Pos.Y)
	}
	if g.right.Pos.Y+g.right.H > g.field.Bottom {
		t.Errorf("Right paddle escaped the bottom bound, Y = %f", g.right.Pos.Y)
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	s := core.NewScreen(80, 24)
	g.Render(s)

	// HUD labels the sides
	if !strings.Contains(s.Row(0), "P1") || !strings.Contains(s.Row(0), "P2") {
		t.Fatalf("HUD row missing side labels: %q", s.Row(0))
	}
	// Serve prompt
	if !strings.Contains(s.Row(23), "SPACE") {
		t.Errorf("Serve prompt missing: %q", s.Row(23))
	}

	g.Step(frame(core.ActionServe))
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(s)
}

func TestGameVariantMetadata(t *testing.T) {
	g := New()
	if g.ID() != "pong" || g.Title() != "Pong" {
		t.Errorf("Two-player metadata wrong: %q / %q", g.ID(), g.Title())
	}

	solo := NewSolo()
	if solo.ID() != "pong-solo" || solo.Title() != "Pong vs CPU" {
		t.Errorf("Solo metadata wrong: %q / %q", solo.ID(), solo.Title())
	}
}

func TestSnapshotHashSensitivity(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	base := g.Snapshot()
	changed := base
	changed.BallVX += 0.0001

	if base.Hash() == changed.Hash() {
		t.Error("Hash should be sensitive to small state changes")
	}
	if base.Hash() != g.Snapshot().Hash() {
		t.Error("Hash should be stable for identical snapshots")
	}
}

func TestSettingsCycle(t *testing.T) {
	s := DefaultSettings()
	first := s.Palette().Name

	seen := map[string]bool{first: true}
	for i := 0; i < len(palettes)-1; i++ {
		s.CyclePalette()
		seen[s.Palette().Name] = true
	}
	if len(seen) != len(palettes) {
		t.Errorf("Cycling should visit every palette, saw %d of %d", len(seen), len(palettes))
	}

	s.CyclePalette()
	if s.Palette().Name != first {
		t.Errorf("Cycling should wrap to the first palette, got %q", s.Palette().Name)
	}

	if s.ToggleSound() {
		t.Error("First toggle should turn sound off")
	}
	if !s.ToggleSound() {
		t.Error("Second toggle should turn sound back on")
	}
}
