// Package backend is the application-facing service layer: it joins the
// persistent store (players, high scores, history) with the ephemeral
// live-session registry behind one API that the TUI and web platforms
// share.
package backend

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/live"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// Service wires storage and the live registry together.
type Service struct {
	store *storage.Store
	live  *live.Registry
}

// NewService creates a service over an open store and live registry.
func NewService(store *storage.Store, reg *live.Registry) *Service {
	return &Service{store: store, live: reg}
}

// GetOrCreatePlayer resolves a player name to a persistent identity.
func (s *Service) GetOrCreatePlayer(name string) (*storage.Player, error) {
	p, err := s.store.GetOrCreatePlayer(name)
	if err != nil {
		return nil, fmt.Errorf("backend: resolve player: %w", err)
	}
	return p, nil
}

// StartSession registers a new live run for the player and returns its
// session ID. A previous active session by the same player is replaced.
func (s *Service) StartSession(playerName string) string {
	return s.live.StartSession(playerName)
}

// PushScore forwards a coarse score update to the live registry.
// Fire-and-forget: unknown or ended sessions are silently ignored.
func (s *Service) PushScore(sessionID string, score int) {
	s.live.PushScore(sessionID, score)
}

// EndSession removes the live record for a finished run.
// Called exactly once per run, before the permanent record is written.
func (s *Service) EndSession(sessionID string) {
	s.live.EndSession(sessionID)
}

// RecordResult persists a finished run and reports whether it set a new
// personal best. A storage failure degrades persistence only; callers
// keep their local result either way.
func (s *Service) RecordResult(playerID int64, score int, duration time.Duration, avoided int) (storage.ResultSummary, error) {
	sum, err := s.store.RecordResult(storage.GameResult{
		PlayerID:   playerID,
		Score:      score,
		Difficulty: difficultyFor(score),
		Duration:   duration,
		Avoided:    avoided,
	})
	if err != nil {
		log.Error("backend: failed to record result", "player", playerID, "score", score, "err", err)
		return storage.ResultSummary{}, fmt.Errorf("backend: record result: %w", err)
	}
	return sum, nil
}

// Leaderboard returns the top 10 players by high score, best first.
func (s *Service) Leaderboard() ([]storage.Player, error) {
	players, err := s.store.Leaderboard(10)
	if err != nil {
		return nil, fmt.Errorf("backend: leaderboard: %w", err)
	}
	return players, nil
}

// History returns a player's recent finished games, newest first.
func (s *Service) History(playerID int64, limit int) ([]storage.HistoryEntry, error) {
	entries, err := s.store.History(playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("backend: history: %w", err)
	}
	return entries, nil
}

// LiveGames returns all currently active runs for spectation.
func (s *Service) LiveGames() []live.Game {
	return s.live.ActiveGames()
}

// difficultyFor is the recorded difficulty level of a finished run:
// one level per 500 points, starting at 1.
func difficultyFor(score int) int {
	return score/500 + 1
}
