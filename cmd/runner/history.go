package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history <player>",
	Short: "Show a player's recent games",
	Long: `Display the most recent games recorded for the given player,
newest first.

Examples:
  runner history alice
  runner history alice --limit 5`,
	Args: cobra.ExactArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum games to show")
}

func runHistory(_ *cobra.Command, args []string) {
	name := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	player, err := store.GetOrCreatePlayer(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving player: %v\n", err)
		os.Exit(1)
	}

	entries, err := store.History(player.ID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent games for %s (best: %d)\n", player.Name, player.HighScore)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tLEVEL\tTIME\tAVOIDED\tPLAYED")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\n",
			e.Score, e.Difficulty, e.Duration, e.Avoided, e.PlayedAt.Format("Jan 02 15:04"))
	}
	w.Flush()
}
