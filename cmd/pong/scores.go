package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehall/tui-pong/internal/platform/tui"
	"github.com/arcadehall/tui-pong/internal/registry"
	"github.com/arcadehall/tui-pong/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse match history",
	Long: `Open the match history browser. Tab switches between the
two-player and solo variants.

With --plain, print the most recent matches to stdout instead.

Examples:
  pong scores
  pong scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print matches instead of opening the browser")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores dumps recent matches for every variant to stdout.
func printScores(store *storage.Store) {
	for _, info := range registry.List() {
		stats, err := store.Stats(info.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s - %d matches (left %d, right %d)\n",
			info.Title, stats.Matches, stats.LeftWins, stats.RightWins)

		matches, err := store.RecentMatches(info.ID, 10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
			os.Exit(1)
		}

		if len(matches) == 0 {
			fmt.Printf("  No matches recorded yet. Play 'pong play' to record one!\n\n")
			continue
		}

		fmt.Printf("  %-17s  %-9s  %s\n", "When", "Score", "Winner")
		for _, e := range matches {
			fmt.Printf("  %-17s  %2d - %-4d  %s\n",
				e.CreatedAt.Format("2006-01-02 15:04"),
				e.ScoreLeft, e.ScoreRight, e.Winner)
		}
		fmt.Println()
	}
}
