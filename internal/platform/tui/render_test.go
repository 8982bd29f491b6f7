package tui

import (
	"math/rand"
	"strings"
	"testing"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
	"bomberboy/internal/game"
)

func TestRenderMatchDrawsArena(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Grid.Width, cfg.Grid.Height = 9, 7
	cfg.Grid.BlockDensity = 0

	m, err := game.NewMatch(cfg, 1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	s := core.NewScreen(80, 24)
	RenderMatch(s, m, m.Frames(0))
	out := s.String()

	if !strings.ContainsRune(out, '█') {
		t.Error("no border blocks rendered")
	}

	// The character glyph sits on its spawn tile.
	frames := m.Frames(0)
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	glyph := frames[0].Sheet.Frame(frames[0].Frame).Glyph
	if !strings.ContainsRune(out, glyph) {
		t.Errorf("character glyph %q not on screen", glyph)
	}

	// HUD line present.
	if !strings.Contains(out, "P1  score 0") {
		t.Error("HUD line missing")
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.SetColored(2, 0, 'c', core.ColorGreen)

	out := RenderScreen(s)
	for _, r := range "abc" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("rune %q missing from output", r)
		}
	}
}

func TestRenderHiddenTilesLookLikeBlocks(t *testing.T) {
	plain := tileGlyphs[game.Block]
	for _, k := range []game.Kind{
		game.PowerupFireHidden, game.PowerupSpeedHidden,
		game.PowerupBombHidden, game.ExitHidden,
	} {
		if tileGlyphs[k] != plain {
			t.Errorf("hidden kind %d renders differently from a plain block", k)
		}
	}
}
