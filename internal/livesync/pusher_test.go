package livesync

import (
	"sync"
	"testing"
	"time"
)

type recordingTarget struct {
	mu      sync.Mutex
	pushes  []int
	blockCh chan struct{} // when non-nil, PushScore blocks until closed
}

func (r *recordingTarget) PushScore(sessionID string, score int) {
	if r.blockCh != nil {
		<-r.blockCh
	}
	r.mu.Lock()
	r.pushes = append(r.pushes, score)
	r.mu.Unlock()
}

func (r *recordingTarget) scores() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.pushes...)
}

func TestPusherDeliversUpdates(t *testing.T) {
	target := &recordingTarget{}
	p := NewPusher(target, 8)
	defer p.Stop()

	p.Push("s1", 500)
	p.Push("s1", 1000)

	deadline := time.After(2 * time.Second)
	for len(target.scores()) < 2 {
		select {
		case <-deadline:
			t.Fatalf("updates not delivered, got %v", target.scores())
		case <-time.After(5 * time.Millisecond):
		}
	}

	got := target.scores()
	if got[0] != 500 || got[1] != 1000 {
		t.Errorf("delivery order wrong: %v", got)
	}
}

func TestPushNeverBlocksWhenTargetStalls(t *testing.T) {
	blockCh := make(chan struct{})
	target := &recordingTarget{blockCh: blockCh}
	p := NewPusher(target, 2)

	// Flood far past the buffer while the worker is stuck.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			p.Push("s1", i*500)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Push blocked on a stalled target")
	}

	close(blockCh)
	p.Stop()
}

func TestStopDiscardsInFlight(t *testing.T) {
	target := &recordingTarget{}
	p := NewPusher(target, 4)
	p.Stop()

	// Pushing after Stop is a silent no-op and must not panic or block.
	p.Push("s1", 500)
	time.Sleep(20 * time.Millisecond)
	if got := target.scores(); len(got) != 0 {
		t.Errorf("pushes after Stop should be discarded, got %v", got)
	}

	// Stop is idempotent.
	p.Stop()
}
