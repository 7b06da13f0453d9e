package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestGetOrCreatePlayer(t *testing.T) {
	store := openTestStore(t)

	p, err := store.GetOrCreatePlayer("alice")
	if err != nil {
		t.Fatalf("GetOrCreatePlayer() failed: %v", err)
	}
	if p.Name != "alice" {
		t.Errorf("Expected name alice, got %q", p.Name)
	}
	if p.HighScore != 0 || p.TotalGames != 0 {
		t.Errorf("New player should start with zero stats, got %+v", p)
	}

	// Same name must resolve to the same record
	again, err := store.GetOrCreatePlayer("alice")
	if err != nil {
		t.Fatalf("GetOrCreatePlayer() second call failed: %v", err)
	}
	if again.ID != p.ID {
		t.Errorf("Expected same player ID %d, got %d", p.ID, again.ID)
	}

	// Different name is a different player
	other, err := store.GetOrCreatePlayer("bob")
	if err != nil {
		t.Fatalf("GetOrCreatePlayer() failed: %v", err)
	}
	if other.ID == p.ID {
		t.Error("Different names must not share a player record")
	}
}

func TestGetOrCreatePlayerEmptyName(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetOrCreatePlayer(""); err == nil {
		t.Error("Expected error for empty player name")
	}
}

func TestRecordResultHighScoreTracking(t *testing.T) {
	store := openTestStore(t)

	p, err := store.GetOrCreatePlayer("alice")
	if err != nil {
		t.Fatalf("GetOrCreatePlayer() failed: %v", err)
	}

	// First recorded game is always a new record
	sum, err := store.RecordResult(GameResult{
		PlayerID: p.ID, Score: 600, Difficulty: 2, Duration: 42 * time.Second, Avoided: 12,
	})
	if err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}
	if !sum.IsNewRecord || sum.HighScore != 600 {
		t.Errorf("Expected new record at 600, got %+v", sum)
	}

	// A worse run keeps the previous best
	sum, err = store.RecordResult(GameResult{
		PlayerID: p.ID, Score: 500, Difficulty: 2, Duration: 30 * time.Second, Avoided: 9,
	})
	if err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}
	if sum.IsNewRecord {
		t.Error("500 after 600 should not be a new record")
	}
	if sum.HighScore != 600 {
		t.Errorf("Expected high score to stay 600, got %d", sum.HighScore)
	}

	// A better run replaces it
	sum, err = store.RecordResult(GameResult{
		PlayerID: p.ID, Score: 700, Difficulty: 2, Duration: 50 * time.Second, Avoided: 15,
	})
	if err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}
	if !sum.IsNewRecord || sum.HighScore != 700 {
		t.Errorf("Expected new record at 700, got %+v", sum)
	}

	// Counters and high score persisted on the player row
	p, err = store.PlayerByID(p.ID)
	if err != nil {
		t.Fatalf("PlayerByID() failed: %v", err)
	}
	if p.HighScore != 700 {
		t.Errorf("Expected stored high score 700, got %d", p.HighScore)
	}
	if p.TotalGames != 3 {
		t.Errorf("Expected 3 total games, got %d", p.TotalGames)
	}
	if p.LastPlayedAt.IsZero() {
		t.Error("last_played_at should be set after recording a game")
	}
}

func TestRecordResultUnknownPlayer(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordResult(GameResult{PlayerID: 999, Score: 100}); err == nil {
		t.Error("Expected error for unknown player ID")
	}
}

func TestLeaderboardOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	scores := map[string]int{"alice": 900, "bob": 1200, "carol": 300, "dave": 700}
	for name, score := range scores {
		p, err := store.GetOrCreatePlayer(name)
		if err != nil {
			t.Fatalf("GetOrCreatePlayer() failed: %v", err)
		}
		if _, err := store.RecordResult(GameResult{PlayerID: p.ID, Score: score, Difficulty: 1}); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	// A player with no finished games stays off the board
	if _, err := store.GetOrCreatePlayer("lurker"); err != nil {
		t.Fatalf("GetOrCreatePlayer() failed: %v", err)
	}

	top, err := store.Leaderboard(3)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(top))
	}
	want := []string{"bob", "alice", "dave"}
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, top[i].Name)
		}
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	store := openTestStore(t)

	p, err := store.GetOrCreatePlayer("alice")
	if err != nil {
		t.Fatalf("GetOrCreatePlayer() failed: %v", err)
	}

	for i, score := range []int{100, 300, 200} {
		_, err := store.RecordResult(GameResult{
			PlayerID: p.ID, Score: score, Difficulty: 1,
			Duration: time.Duration(i+1) * 10 * time.Second, Avoided: i,
		})
		if err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	entries, err := store.History(p.ID, 10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 history entries, got %d", len(entries))
	}
	// Inserted in one test run, so played_at ties break by insert order.
	if entries[0].Score != 200 {
		t.Errorf("Expected most recent game first, got score %d", entries[0].Score)
	}
	if entries[0].Duration != 30*time.Second {
		t.Errorf("Expected duration 30s, got %v", entries[0].Duration)
	}

	// Limit applies
	limited, err := store.History(p.ID, 2)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 entries with limit 2, got %d", len(limited))
	}
}
