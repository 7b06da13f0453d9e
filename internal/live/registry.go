// Package live tracks in-progress runs for the real-time leaderboard.
// Sessions are ephemeral: they exist only in memory, start when a run
// starts, carry coarse score updates while it lasts, and vanish when it
// ends. Nothing here touches persistent storage.
package live

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Game is a snapshot of one in-progress run.
type Game struct {
	SessionID  string
	PlayerName string
	Score      int
	StartedAt  time.Time
}

// Notifier receives the full active set after every mutation.
// Used by the web feed to broadcast live-state changes; may be nil.
type Notifier func(games []Game)

// Registry holds the active sessions, keyed by session ID.
// One session per player name: starting a new run replaces any stale
// session the same player left behind.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Game  // session ID -> game
	byPlayer map[string]string // player name -> session ID
	notify   Notifier
}

// NewRegistry creates an empty registry.
// The notifier is invoked synchronously after each mutation, outside
// the registry lock, with a snapshot of the active set.
func NewRegistry(notify Notifier) *Registry {
	return &Registry{
		sessions: make(map[string]*Game),
		byPlayer: make(map[string]string),
		notify:   notify,
	}
}

// StartSession registers a new run for the player and returns its
// session ID. Any previous session under the same player name is
// replaced, so an abandoned run never lingers on the board.
func (r *Registry) StartSession(playerName string) string {
	id := uuid.NewString()

	r.mu.Lock()
	if old, ok := r.byPlayer[playerName]; ok {
		delete(r.sessions, old)
	}
	r.sessions[id] = &Game{
		SessionID:  id,
		PlayerName: playerName,
		StartedAt:  time.Now(),
	}
	r.byPlayer[playerName] = id
	r.mu.Unlock()

	r.changed()
	return id
}

// PushScore updates the score of an active session.
// Unknown session IDs are ignored: the run may have ended, or the
// player may have started a newer run that replaced this one.
func (r *Registry) PushScore(sessionID string, score int) {
	r.mu.Lock()
	g, ok := r.sessions[sessionID]
	if ok {
		g.Score = score
	}
	r.mu.Unlock()

	if ok {
		r.changed()
	}
}

// EndSession removes a session from the active set.
// Ending an already-ended or unknown session is a no-op.
func (r *Registry) EndSession(sessionID string) {
	r.mu.Lock()
	g, ok := r.sessions[sessionID]
	if ok {
		delete(r.sessions, sessionID)
		if r.byPlayer[g.PlayerName] == sessionID {
			delete(r.byPlayer, g.PlayerName)
		}
	}
	r.mu.Unlock()

	if ok {
		r.changed()
	}
}

// ActiveGames returns a snapshot of all in-progress runs.
// The slice and its elements are copies; callers may mutate them freely.
func (r *Registry) ActiveGames() []Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *Registry) snapshotLocked() []Game {
	games := make([]Game, 0, len(r.sessions))
	for _, g := range r.sessions {
		games = append(games, *g)
	}
	return games
}

func (r *Registry) changed() {
	if r.notify == nil {
		return
	}
	r.mu.RLock()
	games := r.snapshotLocked()
	r.mu.RUnlock()
	r.notify(games)
}
