package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/live"
	"github.com/vovakirdan/lane-runner/internal/livesync"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner server for remote play",
	Long: `Start an SSH server that lets players connect and play, all sharing
one leaderboard and one live board. A spectator HTTP endpoint serves
the live feed over WebSocket plus JSON views of the boards.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lanerunner/host_key

Examples:
  runner serve                           # SSH on :23234, spectators on :8080
  runner serve --ssh :2222               # SSH on port 2222
  runner serve --http ""                 # Disable the spectator endpoint
  runner serve --host-key ./my_host_key  # Use specific host key

Players connect with:
  ssh <name>@localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "Spectator HTTP address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	runnerCfg, err := config.LoadRunner(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The spectator server and the live registry reference each other:
	// the registry notifies the feed, the feed reads through the
	// service. The notifier closes over the pointer to break the cycle.
	var webServer *web.Server
	svc, store, err := openBackend(func(games []live.Game) {
		if webServer != nil {
			webServer.OnLiveChange(games)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHTTPAddr != "" {
		webServer = web.NewServer(svc, flagHTTPAddr)
	}

	pusher := livesync.NewPusher(svc, 0)
	defer pusher.Stop()

	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(sshCfg, runnerCfg, svc, pusher)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	if webServer != nil {
		go func() {
			if err := webServer.Run(); err != nil {
				log.Error("spectator server stopped", "err", err)
			}
		}()
	}

	fmt.Printf("Starting runner SSH server on %s\n", sshCfg.Address)
	if flagHTTPAddr != "" {
		fmt.Printf("Spectator feed on %s (/ws, /live, /leaderboard)\n", flagHTTPAddr)
	}
	fmt.Println("Connect with: ssh <name>@localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
