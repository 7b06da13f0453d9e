package live

import (
	"sync"
	"testing"
)

func TestStartSessionReplacesStaleRun(t *testing.T) {
	r := NewRegistry(nil)

	first := r.StartSession("alice")
	r.PushScore(first, 500)

	// A new run by the same player evicts the stale one.
	second := r.StartSession("alice")
	if second == first {
		t.Fatal("new session must get a new ID")
	}

	games := r.ActiveGames()
	if len(games) != 1 {
		t.Fatalf("expected 1 active game, got %d", len(games))
	}
	if games[0].SessionID != second {
		t.Errorf("active session = %s, want %s", games[0].SessionID, second)
	}
	if games[0].Score != 0 {
		t.Errorf("replacement session should start at score 0, got %d", games[0].Score)
	}
}

func TestPushScoreUnknownSessionIgnored(t *testing.T) {
	r := NewRegistry(nil)
	id := r.StartSession("alice")

	r.PushScore("no-such-session", 9999)

	games := r.ActiveGames()
	if len(games) != 1 || games[0].SessionID != id || games[0].Score != 0 {
		t.Errorf("unknown-session push must not alter state: %+v", games)
	}
}

func TestEndSessionRemovesFromActiveSet(t *testing.T) {
	r := NewRegistry(nil)

	a := r.StartSession("alice")
	b := r.StartSession("bob")
	r.PushScore(a, 500)
	r.PushScore(b, 1000)

	r.EndSession(a)

	games := r.ActiveGames()
	if len(games) != 1 {
		t.Fatalf("expected 1 active game after end, got %d", len(games))
	}
	if games[0].PlayerName != "bob" {
		t.Errorf("wrong session removed: %+v", games)
	}

	// Idempotent
	r.EndSession(a)
	if got := len(r.ActiveGames()); got != 1 {
		t.Errorf("double end changed active set: %d games", got)
	}
}

func TestEndSessionDoesNotEvictNewerRun(t *testing.T) {
	r := NewRegistry(nil)

	old := r.StartSession("alice")
	current := r.StartSession("alice")

	// Ending the replaced session must not take the live one with it.
	r.EndSession(old)

	games := r.ActiveGames()
	if len(games) != 1 || games[0].SessionID != current {
		t.Errorf("newer run lost after ending stale session: %+v", games)
	}
}

func TestNotifierSeesEveryMutation(t *testing.T) {
	var mu sync.Mutex
	var calls [][]Game
	r := NewRegistry(func(games []Game) {
		mu.Lock()
		calls = append(calls, games)
		mu.Unlock()
	})

	id := r.StartSession("alice")
	r.PushScore(id, 500)
	r.PushScore("bogus", 1) // no mutation, no notification
	r.EndSession(id)

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(calls))
	}
	if len(calls[1]) != 1 || calls[1][0].Score != 500 {
		t.Errorf("push notification snapshot wrong: %+v", calls[1])
	}
	if len(calls[2]) != 0 {
		t.Errorf("end notification should carry empty set, got %+v", calls[2])
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			names := []string{"alice", "bob", "carol", "dave"}
			id := r.StartSession(names[n%len(names)])
			for s := 0; s < 100; s++ {
				r.PushScore(id, s*500)
				r.ActiveGames()
			}
			r.EndSession(id)
		}(i)
	}
	wg.Wait()

	// Every goroutine ended its session; stale replacements are gone too.
	if got := len(r.ActiveGames()); got != 0 {
		t.Errorf("expected empty registry after all runs ended, got %d", got)
	}
}
