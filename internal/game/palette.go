package game

import "github.com/arcadehall/tui-pong/internal/core"

// Palette assigns colors to the game elements. The burst colors are
// sampled randomly per explosion particle.
type Palette struct {
	Name   string
	Paddle core.Color
	Ball   core.Color
	Net    core.Color
	Trail  core.Color
	Text   core.Color
	Burst  []core.Color
}

// palettes are the built-in palettes, cycled with the palette key.
var palettes = []Palette{
	{
		Name:   "classic",
		Paddle: core.ColorWhite,
		Ball:   core.ColorBrightWhite,
		Net:    core.ColorGray,
		Trail:  core.ColorGray,
		Text:   core.ColorWhite,
		Burst:  []core.Color{core.ColorBrightWhite, core.ColorWhite, core.ColorGray},
	},
	{
		Name:   "neon",
		Paddle: core.ColorBrightCyan,
		Ball:   core.ColorBrightMagenta,
		Net:    core.ColorBlue,
		Trail:  core.ColorCyan,
		Text:   core.ColorBrightCyan,
		Burst:  []core.Color{core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightBlue},
	},
	{
		Name:   "ember",
		Paddle: core.ColorBrightYellow,
		Ball:   core.ColorBrightRed,
		Net:    core.ColorGray,
		Trail:  core.ColorOrange,
		Text:   core.ColorBrightYellow,
		Burst:  []core.Color{core.ColorBrightRed, core.ColorOrange, core.ColorBrightYellow},
	},
	{
		Name:   "forest",
		Paddle: core.ColorBrightGreen,
		Ball:   core.ColorBrightWhite,
		Net:    core.ColorGreen,
		Trail:  core.ColorGreen,
		Text:   core.ColorBrightGreen,
		Burst:  []core.Color{core.ColorBrightGreen, core.ColorBrightYellow, core.ColorGreen},
	},
}

// Settings holds the per-session presentation toggles. Held by the game
// so there is no process-wide mutable state.
type Settings struct {
	PaletteIndex int
	SoundOn      bool
}

// DefaultSettings returns settings with the first palette and sound on.
func DefaultSettings() Settings {
	return Settings{PaletteIndex: 0, SoundOn: true}
}

// Palette returns the active palette.
func (s Settings) Palette() Palette {
	return palettes[s.PaletteIndex%len(palettes)]
}

// CyclePalette advances to the next palette.
func (s *Settings) CyclePalette() {
	s.PaletteIndex = (s.PaletteIndex + 1) % len(palettes)
}

// ToggleSound flips the sound flag and returns the new value.
func (s *Settings) ToggleSound() bool {
	s.SoundOn = !s.SoundOn
	return s.SoundOn
}
