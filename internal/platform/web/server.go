package web

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/backend"
	"github.com/vovakirdan/lane-runner/internal/live"
)

// Server exposes the spectator endpoints over HTTP.
type Server struct {
	svc  *backend.Service
	hub  *Hub
	addr string
}

// NewServer creates the spectator server.
// Wire OnLiveChange into the live registry so mutations reach the feed.
func NewServer(svc *backend.Service, addr string) *Server {
	return &Server{
		svc:  svc,
		hub:  NewHub(),
		addr: addr,
	}
}

// OnLiveChange is the live.Notifier hook: every registry mutation is
// broadcast to all connected spectators.
func (s *Server) OnLiveChange(games []live.Game) {
	s.hub.Broadcast(liveMessage(games))
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/live", enableCORS(s.handleLive))
	mux.HandleFunc("/leaderboard", enableCORS(s.handleLeaderboard))

	log.Info("spectator server running", "addr", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

// handleWS upgrades a spectator connection and starts its pumps.
// The first frame is the current live snapshot, so a fresh spectator
// doesn't wait for the next score boundary.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("web: upgrade failed", "err", err)
		return
	}

	client := NewClient(s.hub, conn)

	go client.writePump()
	go client.readPump()

	s.hub.Broadcast(liveMessage(s.svc.LiveGames()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // Best-effort health body
	w.Write([]byte("ok"))
}

// handleLive returns the current active games as JSON.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(liveMessage(s.svc.LiveGames())); err != nil {
		log.Debug("web: encode live failed", "err", err)
	}
}

// leaderboardEntryJSON is one row of the persistent leaderboard.
type leaderboardEntryJSON struct {
	Rank      int    `json:"rank"`
	Player    string `json:"player"`
	HighScore int    `json:"highScore"`
	Games     int    `json:"games"`
}

// handleLeaderboard returns the top players as JSON.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	players, err := s.svc.Leaderboard()
	if err != nil {
		log.Error("web: leaderboard query failed", "err", err)
		http.Error(w, "leaderboard unavailable", http.StatusInternalServerError)
		return
	}

	out := make([]leaderboardEntryJSON, len(players))
	for i, p := range players {
		out[i] = leaderboardEntryJSON{
			Rank:      i + 1,
			Player:    p.Name,
			HighScore: p.HighScore,
			Games:     p.TotalGames,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Debug("web: encode leaderboard failed", "err", err)
	}
}
