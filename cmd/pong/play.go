package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehall/tui-pong/internal/audio"
	"github.com/arcadehall/tui-pong/internal/config"
	"github.com/arcadehall/tui-pong/internal/core"
	"github.com/arcadehall/tui-pong/internal/game"
	"github.com/arcadehall/tui-pong/internal/platform/tui"
	"github.com/arcadehall/tui-pong/internal/registry"
	"github.com/arcadehall/tui-pong/internal/storage"
)

var (
	flagSolo   bool
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a Pong match. Two-player by default, --solo plays the right
paddle with the CPU.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle
  Space      - Serve
  C          - Cycle color palette
  M          - Toggle sound
  P          - Pause
  R          - Restart (after match end)
  Q/Ctrl+C   - Quit

Examples:
  pong play
  pong play --solo
  pong play --config ./my-pong.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSolo, "solo", false, "Play against the CPU")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "pong"
	if flagSolo {
		gameID = "pong-solo"
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Point the game at the custom config before creation
	game.SetConfigPath(flagConfig)

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open matches database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Open the audio sink from the same config the game uses
	pongCfg, err := config.LoadPong(flagConfig)
	if err != nil {
		pongCfg = config.DefaultPongConfig()
	}
	if flagMute {
		pongCfg.Audio.Enabled = false
	}
	sink := audio.Open(pongCfg.Audio)

	runErr := tui.Run(g, store, sink, cfg)

	sink.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
