// Package livesync decouples the simulation loop from live-score
// delivery. Score pushes are fire-and-forget: the game thread enqueues
// and moves on, a background worker talks to the live store, and a slow
// or failing store can never stall a frame.
package livesync

import (
	"sync"

	"github.com/charmbracelet/log"
)

// ScoreTarget is where pushed scores end up.
// Implemented by the live registry (directly or through the backend).
type ScoreTarget interface {
	PushScore(sessionID string, score int)
}

type update struct {
	sessionID string
	score     int
}

// Pusher forwards score updates to a ScoreTarget from a worker
// goroutine. The enqueue path never blocks: when the buffer is full the
// oldest pending update is dropped in favor of the newer score, which
// supersedes it anyway.
type Pusher struct {
	target  ScoreTarget
	updates chan update
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewPusher starts the delivery worker. buffer <= 0 uses a sane default.
func NewPusher(target ScoreTarget, buffer int) *Pusher {
	if buffer <= 0 {
		buffer = 16
	}
	p := &Pusher{
		target:  target,
		updates: make(chan update, buffer),
		done:    make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Push enqueues a score update without blocking.
// Updates for a stopped pusher are silently discarded.
func (p *Pusher) Push(sessionID string, score int) {
	select {
	case <-p.done:
		// Pusher is stopped, don't send
		return
	default:
	}

	u := update{sessionID: sessionID, score: score}

	select {
	case p.updates <- u:
		// Update queued
	default:
		// Buffer full, drop oldest and retry
		select {
		case old := <-p.updates:
			log.Debug("livesync: dropped stale score update",
				"session", old.sessionID, "score", old.score)
		default:
		}
		// Try again (best effort)
		select {
		case p.updates <- u:
		default:
		}
	}
}

// Stop shuts the worker down. In-flight updates are discarded; the final
// score reaches storage through the result-recording path, not through
// the live feed, so nothing of record is lost.
func (p *Pusher) Stop() {
	p.once.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}

func (p *Pusher) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case u := <-p.updates:
			p.target.PushScore(u.sessionID, u.score)
		}
	}
}
