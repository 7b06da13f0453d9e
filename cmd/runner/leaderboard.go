package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/storage"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top players",
	Long: `Display the top 10 players by high score.

Examples:
  runner leaderboard
  runner leaderboard --db ./runner.db`,
	Run: runLeaderboard,
}

func runLeaderboard(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	players, err := store.Leaderboard(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving leaderboard: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runners")
	fmt.Println()

	if len(players) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tHIGH SCORE\tGAMES\tLAST PLAYED")
	for i, p := range players {
		last := "-"
		if !p.LastPlayedAt.IsZero() {
			last = p.LastPlayedAt.Format("Jan 02 15:04")
		}
		fmt.Fprintf(w, "#%d\t%s\t%d\t%d\t%s\n", i+1, p.Name, p.HighScore, p.TotalGames, last)
	}
	w.Flush()
}
