package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player string
		score  int
	}{
		{"alice", 100},
		{"alice", 50},
		{"bob", 200},
	} {
		if _, err := store.SaveScore(s.player, s.score); err != nil {
			t.Fatalf("SaveScore(%q, %d) failed: %v", s.player, s.score, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Player != "bob" || scores[0].Score != 200 {
		t.Errorf("Expected bob/200 on top, got %s/%d", scores[0].Player, scores[0].Score)
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %d, %d", scores[1].Score, scores[2].Score)
	}

	high, err := store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 100 {
		t.Errorf("Expected alice high score 100, got %d", high)
	}

	// Unknown player has no scores, not an error.
	high, err = store.HighScore("carol")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", 100)
	store.SaveScore("bob", 200)

	if err := store.ClearScores("alice"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "bob" {
		t.Errorf("Expected only bob's score to remain, got %v", scores)
	}
}

func TestStoreMatches(t *testing.T) {
	store := openTestStore(t)

	results := []MatchResult{
		{Players: 1, Difficulty: "normal", Winner: "alice", Score1: 320, Pickups1: 4, EndReason: EndReasonExit, Duration: 95},
		{Players: 2, Difficulty: "hard", Winner: "bob", Score1: 40, Score2: 260, Pickups2: 3, EndReason: EndReasonDuel, Duration: 140},
		{Players: 1, Difficulty: "easy", EndReason: EndReasonDied, Duration: 30},
	}
	for _, r := range results {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches(2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(recent))
	}
	// Most recent first.
	if recent[0].EndReason != EndReasonDied {
		t.Errorf("Expected the no-winner match first, got %+v", recent[0])
	}
	if recent[0].Winner != "" {
		t.Errorf("Expected empty winner, got %q", recent[0].Winner)
	}
	if recent[1].Winner != "bob" || recent[1].Score2 != 260 || recent[1].Pickups2 != 3 {
		t.Errorf("Expected bob's duel, got %+v", recent[1])
	}

	wins, err := store.WinCount("bob")
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if wins != 1 {
		t.Errorf("Expected 1 win for bob, got %d", wins)
	}
}
