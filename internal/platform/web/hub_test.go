package web

import (
	"testing"
	"time"

	"github.com/vovakirdan/lane-runner/internal/live"
)

func TestHubBroadcastReachesAllSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Register("a")
	b := h.Register("b")

	h.Broadcast(Message{Type: "live"})

	for _, ch := range []chan Message{a, b} {
		select {
		case msg := <-ch:
			if msg.Type != "live" {
				t.Errorf("got message type %q", msg.Type)
			}
		default:
			t.Error("subscriber did not receive broadcast")
		}
	}
}

func TestHubSlowSubscriberDropsNotBlocks(t *testing.T) {
	h := NewHub()
	ch := h.Register("slow")

	// Overflow the buffer; Broadcast must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			h.Broadcast(Message{Type: "live"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a full subscriber channel")
	}

	if got := len(ch); got > cap(ch) {
		t.Errorf("channel over capacity: %d", got)
	}
}

func TestHubUnregisterClosesChannel(t *testing.T) {
	h := NewHub()
	ch := h.Register("a")
	h.Unregister("a")

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after Unregister")
	}
	if h.SubscriberCount() != 0 {
		t.Errorf("subscriber count = %d, want 0", h.SubscriberCount())
	}

	// Broadcast after unregister must not panic
	h.Broadcast(Message{Type: "live"})
}

func TestLiveMessageOrdersByScore(t *testing.T) {
	now := time.Now()
	msg := liveMessage([]live.Game{
		{SessionID: "1", PlayerName: "low", Score: 500, StartedAt: now},
		{SessionID: "2", PlayerName: "high", Score: 2000, StartedAt: now},
		{SessionID: "3", PlayerName: "mid", Score: 1000, StartedAt: now},
	})

	if msg.Type != "live" {
		t.Errorf("message type = %q", msg.Type)
	}
	want := []string{"high", "mid", "low"}
	for i, name := range want {
		if msg.Games[i].Player != name {
			t.Errorf("position %d: got %s, want %s", i, msg.Games[i].Player, name)
		}
	}
}
