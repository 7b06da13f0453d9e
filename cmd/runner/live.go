package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var flagServerURL string

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Show currently running games on a server",
	Long: `Query a running 'runner serve' instance for its in-progress games.
Live sessions exist only in server memory, so this talks to the
spectator HTTP endpoint rather than the database.

Examples:
  runner live
  runner live --server http://play.example.com:8080`,
	Run: runLive,
}

func init() {
	liveCmd.Flags().StringVar(&flagServerURL, "server", "http://localhost:8080", "Spectator server base URL")
}

// liveResponse mirrors the spectator server's /live payload.
type liveResponse struct {
	Games []struct {
		Player    string    `json:"player"`
		Score     int       `json:"score"`
		StartedAt time.Time `json:"startedAt"`
	} `json:"games"`
}

func runLive(_ *cobra.Command, _ []string) {
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(flagServerURL + "/live")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error contacting server: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Server returned %s\n", resp.Status)
		os.Exit(1)
	}

	var payload liveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Live Games")
	fmt.Println()

	if len(payload.Games) == 0 {
		fmt.Println("Nobody is running right now.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tSCORE\tRUNNING")
	for _, g := range payload.Games {
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			g.Player, g.Score, time.Since(g.StartedAt).Truncate(time.Second))
	}
	w.Flush()
}
