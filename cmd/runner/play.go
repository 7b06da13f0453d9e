package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/livesync"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var (
	flagName   string
	flagConfig string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner locally",
	Long: `Start a local game. You will be asked for a name on first launch
unless --name is given; scores are recorded under that name.

Controls:
  A/D or Left/Right  - Change lane
  Space/W/Up         - Jump
  P                  - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Mouse swipes work too: drag sideways to change lane, drag up to jump.

Examples:
  runner play
  runner play --name alice
  runner play --config ./my-runner.yaml
  runner play --seed 42 --fps 30`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the name prompt)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	svc, store, err := openBackend(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rtCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	pusher := livesync.NewPusher(svc, 0)
	defer pusher.Stop()

	if err := tui.Run(svc, pusher, flagName, runnerCfg, rtCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
