// runner is a terminal endless-runner: dodge and jump over obstacles
// across three lanes, survive as long as you can, and climb a shared
// leaderboard.
//
// Usage:
//
//	runner play              - Play locally
//	runner leaderboard       - Show the top players
//	runner history <name>    - Show a player's recent games
//	runner live              - Show currently running games
//	runner serve             - Start SSH server (and spectator feed) for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lanerunner/runner.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/backend"
	"github.com/vovakirdan/lane-runner/internal/live"
	"github.com/vovakirdan/lane-runner/internal/storage"
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
	Use:   "runner",
	Short: "Lane Runner - An endless runner in your terminal",
	Long: `Lane Runner is a terminal endless-runner. Switch lanes, jump over
obstacles, and survive as long as you can; the longer you last, the
faster it gets. High scores and game history are stored locally, and a
server mode lets players compete over SSH on one shared leaderboard.

Examples:
  runner play
  runner play --name alice
  runner leaderboard
  runner live
  runner serve --ssh :2222 --http :8080`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanerunner/runner.db", "Path to database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(serveCmd)
}

// openBackend opens the database and assembles the service layer.
// The notifier, when non-nil, receives live-registry changes.
func openBackend(notify live.Notifier) (*backend.Service, *storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	reg := live.NewRegistry(notify)
	return backend.NewService(store, reg), store, nil
}
