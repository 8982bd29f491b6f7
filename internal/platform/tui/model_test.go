package tui

import (
	"strings"
	"testing"
	"time"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
)

func testMatchModel(t *testing.T) *MatchModel {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Grid.BlockDensity = 0
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

	m, err := NewMatchModel(cfg, rt, 1, config.DifficultyNormal, nil, "tester")
	if err != nil {
		t.Fatalf("NewMatchModel: %v", err)
	}
	return m
}

func TestMatchModelPauseReleasesHeldKeys(t *testing.T) {
	m := testMatchModel(t)
	base := time.Now()
	m.lastTick = base

	// Hold right for one frame.
	if ev, ok := m.keys.KeyMsg(keyMsg("right"), base); ok {
		m.pending = append(m.pending, ev)
	}
	spawn := m.match.Character(core.Player1).Pos()
	m.handleTick(base.Add(50 * time.Millisecond))
	if m.match.Character(core.Player1).Pos() == spawn {
		t.Fatal("character never moved while the key was held")
	}

	// Pause with the key still held.
	if ev, ok := m.keys.KeyMsg(keyMsg("p"), base.Add(60*time.Millisecond)); ok {
		m.pending = append(m.pending, ev)
	}
	m.handleTick(base.Add(100 * time.Millisecond))
	if m.Mode() != core.ModePause {
		t.Fatalf("mode = %v, want ModePause", m.Mode())
	}
	paused := m.match.Character(core.Player1).Pos()

	// Resume with nothing held: the release edge buffered on pause must
	// reach the match, so the character stands still.
	m.Resume()
	m.lastTick = base.Add(100 * time.Millisecond)
	for i := 1; i <= 10; i++ {
		m.handleTick(base.Add(time.Duration(100+50*i) * time.Millisecond))
	}
	if got := m.match.Character(core.Player1).Pos(); got != paused {
		t.Fatalf("character moved after resume with no key held: %v -> %v", paused, got)
	}
}

func TestMatchModelPauseOverlay(t *testing.T) {
	m := testMatchModel(t)
	base := time.Now()
	m.lastTick = base
	m.handleTick(base.Add(50 * time.Millisecond))

	out := m.ViewPaused()
	for _, want := range []string{"PAUSED", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("pause overlay missing %q", want)
		}
	}

	// Resuming redraws the match without the dialog.
	m.Resume()
	m.lastTick = base.Add(100 * time.Millisecond)
	m.handleTick(base.Add(150 * time.Millisecond))
	if strings.Contains(m.View(), "PAUSED") {
		t.Error("pause dialog survived a resume")
	}
}
