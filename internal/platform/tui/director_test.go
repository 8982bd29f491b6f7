package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
	"bomberboy/internal/storage"
)

func TestMenuViewDrawsPanel(t *testing.T) {
	m := NewMenuModel(80, 24)
	out := m.View()

	for _, want := range []string{"┌", "┘", "B O M B E R B O Y", "> Play", "  Scores"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestSetupViewClampsSelection(t *testing.T) {
	m := NewSetupModel(80, 24)

	// Player count pins at its bounds.
	m.adjust(-1)
	if m.Players() != 1 {
		t.Fatalf("players = %d, want pinned at 1", m.Players())
	}
	m.adjust(1)
	m.adjust(1)
	if m.Players() != 2 {
		t.Fatalf("players = %d, want pinned at 2", m.Players())
	}

	m.cursor = 1
	m.adjust(1)
	m.adjust(1)
	if m.Difficulty() != config.DifficultyHard {
		t.Fatalf("difficulty = %v, want pinned at hard", m.Difficulty())
	}

	out := m.View()
	for _, want := range []string{"MATCH SETUP", "Players:    < 2 >", "Difficulty: < hard >", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("setup view missing %q", want)
		}
	}
}

func TestDirectorFinishViewShowsRecord(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	store.SaveScore("tester", 120)
	store.SaveMatch(storage.MatchResult{Players: 1, Difficulty: "normal", Winner: "tester", EndReason: storage.EndReasonExit})

	cfg := config.DefaultGameConfig()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	d := NewDirector(cfg, rt, store, "tester")

	match, err := NewMatchModel(cfg, rt, 1, config.DifficultyNormal, store, "tester")
	if err != nil {
		t.Fatalf("NewMatchModel: %v", err)
	}
	d.match = match
	d.mode = core.ModeFinish

	out := d.finishView()
	for _, want := range []string{"GAME OVER", "P1 score: 0", "tester all-time: best 120, wins 1", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("finish view missing %q", want)
		}
	}
}
