package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:  0.9,
			MaxSpeed:   2.4,
			Drag:       0.999,
			Elasticity: 1.05,
			WallBoost:  1.02,
			SpinFactor: 0.25,
			SpinDrift:  0.08,
			SpinDecay:  0.95,
		},
		Paddles: PongPaddles{
			Height:    0, // Derived from screen height
			Width:     1,
			Offset:    2,
			Speed:     1.0,
			Smoothing: 0.5,
			Recoil:    0.3,
		},
		Particles: PongParticles{
			TrailLifeMin:     0.3,
			TrailLifeMax:     0.9,
			TrailGravity:     0.01,
			TrailMax:         400,
			ExplosionCount:   120,
			ExplosionLifeMin: 0.9,
			ExplosionLifeMax: 1.6,
			ExplosionGravity: 0.05,
			ExplosionDamping: 0.98,
		},
		Gameplay: PongGameplay{
			WinScore:    7,
			ServeOffset: 2,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleDir:    "",
		},
	}
}
