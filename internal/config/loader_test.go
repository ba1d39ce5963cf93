package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPongEmbeddedDefault(t *testing.T) {
	// No custom path and no local config: the embedded YAML must load
	// and agree with the hardcoded defaults.
	cfg, err := LoadPong("")
	require.NoError(t, err)

	def := DefaultPongConfig()
	assert.Equal(t, def.Physics, cfg.Physics)
	assert.Equal(t, def.Gameplay, cfg.Gameplay)
	assert.Equal(t, def.Particles, cfg.Particles)
}

func TestLoadPongCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")

	custom := `
physics:
  ball_speed: 1.5
  max_speed: 3.0
  elasticity: 1.2
gameplay:
  win_score: 3
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o600))

	cfg, err := LoadPong(path)
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.Physics.BallSpeed)
	assert.Equal(t, 3.0, cfg.Physics.MaxSpeed)
	assert.Equal(t, 1.2, cfg.Physics.Elasticity)
	assert.Equal(t, 3, cfg.Gameplay.WinScore)
}

func TestLoadPongMissingCustomPath(t *testing.T) {
	_, err := LoadPong(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadPongMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics: [not a map"), 0o600))

	_, err := LoadPong(path)
	assert.Error(t, err)
}

func TestDefaultPongConfigSanity(t *testing.T) {
	cfg := DefaultPongConfig()

	assert.Greater(t, cfg.Physics.MaxSpeed, cfg.Physics.BallSpeed,
		"speed cap must exceed the serve speed")
	assert.Greater(t, cfg.Physics.Elasticity, 1.0,
		"paddle bounce must speed the ball up")
	assert.LessOrEqual(t, cfg.Physics.Drag, 1.0)
	assert.Positive(t, cfg.Gameplay.WinScore)
	assert.Positive(t, cfg.Particles.TrailMax)
	assert.LessOrEqual(t, cfg.Particles.TrailLifeMin, cfg.Particles.TrailLifeMax)
	assert.LessOrEqual(t, cfg.Particles.ExplosionLifeMin, cfg.Particles.ExplosionLifeMax)
	assert.GreaterOrEqual(t, cfg.Paddles.Smoothing, 0.0)
	assert.Less(t, cfg.Paddles.Smoothing, 1.0)
}
