// Package config provides YAML-based game configuration loading
// for the pong platform.
package config

// PongConfig contains all tunable parameters for a Pong match.
type PongConfig struct {
	Physics   PongPhysics   `yaml:"physics"`
	Paddles   PongPaddles   `yaml:"paddles"`
	Particles PongParticles `yaml:"particles"`
	Gameplay  PongGameplay  `yaml:"gameplay"`
	Audio     AudioConfig   `yaml:"audio"`
}

// PongPhysics defines ball motion parameters.
// The motion model and the collision resolver share Drag and MaxSpeed so
// the speed cap is applied with identical constants on both paths.
type PongPhysics struct {
	BallSpeed  float64 `yaml:"ball_speed"`  // Serve speed in cells per tick
	MaxSpeed   float64 `yaml:"max_speed"`   // Hard cap on speed magnitude
	Drag       float64 `yaml:"drag"`        // Per-tick velocity multiplier (<1)
	Elasticity float64 `yaml:"elasticity"`  // Horizontal multiplier on paddle bounce (>1)
	WallBoost  float64 `yaml:"wall_boost"`  // Velocity multiplier on wall bounce
	SpinFactor float64 `yaml:"spin_factor"` // Spin gained per paddle hit
	SpinDrift  float64 `yaml:"spin_drift"`  // Vertical drift per unit of spin per tick
	SpinDecay  float64 `yaml:"spin_decay"`  // Per-tick spin multiplier (<1)
}

// PongPaddles defines paddle geometry and control feel.
type PongPaddles struct {
	Height    int     `yaml:"height"`    // 0 derives height from screen size
	Width     int     `yaml:"width"`     // Width in cells
	Offset    int     `yaml:"offset"`    // Distance from the field edge
	Speed     float64 `yaml:"speed"`     // Target speed while a key is held
	Smoothing float64 `yaml:"smoothing"` // Velocity inertia coefficient in [0,1)
	Recoil    float64 `yaml:"recoil"`    // Impulse applied to the paddle on ball impact
}

// PongParticles defines trail and explosion behavior.
// Trail and explosion particles deliberately use separate gravity and
// damping constants; each kind has exactly one policy.
type PongParticles struct {
	TrailLifeMin     float64 `yaml:"trail_life_min"`    // Seconds
	TrailLifeMax     float64 `yaml:"trail_life_max"`    // Seconds
	TrailGravity     float64 `yaml:"trail_gravity"`     // Downward bias per tick
	TrailMax         int     `yaml:"trail_max"`         // Live trail particle cap
	ExplosionCount   int     `yaml:"explosion_count"`   // Particles per burst
	ExplosionLifeMin float64 `yaml:"explosion_life_min"`
	ExplosionLifeMax float64 `yaml:"explosion_life_max"`
	ExplosionGravity float64 `yaml:"explosion_gravity"`
	ExplosionDamping float64 `yaml:"explosion_damping"` // Per-tick velocity multiplier
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore    int `yaml:"win_score"`    // Score that ends the match
	ServeOffset int `yaml:"serve_offset"` // Cells between paddle face and held ball
}

// AudioConfig defines the sound cue settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 - 1.0
	SampleDir    string  `yaml:"sample_dir"`    // Optional directory with cue WAV files
}
