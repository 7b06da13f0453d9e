package web

import (
	"sort"
	"time"

	"github.com/vovakirdan/lane-runner/internal/live"
)

// LiveGameJSON is one in-progress run as seen by spectators.
type LiveGameJSON struct {
	SessionID string    `json:"sessionId"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	StartedAt time.Time `json:"startedAt"`
}

// Message is one frame of the spectator feed.
type Message struct {
	Type  string         `json:"type"`
	Games []LiveGameJSON `json:"games"`
}

// liveMessage converts a registry snapshot to a feed frame, highest
// score first.
func liveMessage(games []live.Game) Message {
	sort.Slice(games, func(i, j int) bool {
		return games[i].Score > games[j].Score
	})

	out := make([]LiveGameJSON, len(games))
	for i, g := range games {
		out[i] = LiveGameJSON{
			SessionID: g.SessionID,
			Player:    g.PlayerName,
			Score:     g.Score,
			StartedAt: g.StartedAt,
		}
	}
	return Message{Type: "live", Games: out}
}
