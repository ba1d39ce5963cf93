// pong is a terminal Pong with drag, spin and particle effects.
//
// Usage:
//
//	pong play            - Play two-player Pong (W/S vs arrow keys)
//	pong play --solo     - Play against the CPU
//	pong scores          - Browse match history
//	pong serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rallies
//	--db <path>     - Set database path (default: ~/.pong/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its variants
	_ "github.com/arcadehall/tui-pong/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong for your terminal",
	Long: `Pong played entirely in the terminal, with ball spin, drag,
particle trails and a match history database.

Available commands:
  play     - Play a match (two-player or --solo vs CPU)
  scores   - Browse match history
  serve    - Start SSH server for remote play

Examples:
  pong play
  pong play --solo --mute
  pong scores
  pong serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/matches.db", "Path to matches database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
