package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bomberboy/internal/core"
	"bomberboy/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Ch)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Terminal cells are roughly twice as tall as wide, so one map tile renders
// as two columns by one row to stay square-ish.
const tileCols = 2

// tileGlyphs is what each tile kind looks like. Hidden specials render
// exactly like plain blocks so the terminal doesn't spoil the secret.
var tileGlyphs = map[game.Kind]struct {
	runes [tileCols]rune
	color core.Color
}{
	game.FixedBlock:         {[tileCols]rune{'█', '█'}, core.ColorGray},
	game.Block:              {[tileCols]rune{'▒', '▒'}, core.ColorYellow},
	game.PowerupFireHidden:  {[tileCols]rune{'▒', '▒'}, core.ColorYellow},
	game.PowerupSpeedHidden: {[tileCols]rune{'▒', '▒'}, core.ColorYellow},
	game.PowerupBombHidden:  {[tileCols]rune{'▒', '▒'}, core.ColorYellow},
	game.ExitHidden:         {[tileCols]rune{'▒', '▒'}, core.ColorYellow},
	game.BombTile:           {[tileCols]rune{'●', ' '}, core.ColorBrightWhite},
	game.FlameTile:          {[tileCols]rune{'✶', '✶'}, core.ColorBrightRed},
	game.PowerupFire:        {[tileCols]rune{'F', ' '}, core.ColorBrightRed},
	game.PowerupSpeed:       {[tileCols]rune{'S', ' '}, core.ColorBrightCyan},
	game.PowerupBomb:        {[tileCols]rune{'B', ' '}, core.ColorBrightYellow},
	game.Exit:               {[tileCols]rune{'◊', ' '}, core.ColorBrightGreen},
}

// RenderMatch draws the grid, characters, and a one-line HUD per player into
// the screen buffer. The arena is centered in the available space.
func RenderMatch(s *core.Screen, m *game.Match, frames []game.CharacterFrame) {
	s.Clear()

	tiles := m.Tiles()
	hudLines := len(m.Players())
	arena := core.NewRect(
		core.Max(0, (s.Width()-tiles.Width()*tileCols)/2),
		core.Max(1, (s.Height()-tiles.Height()-hudLines)/2),
		tiles.Width()*tileCols,
		tiles.Height(),
	)

	for ty := 0; ty < tiles.Height(); ty++ {
		for tx := 0; tx < tiles.Width(); tx++ {
			g, ok := tileGlyphs[tiles.At(tx, ty)]
			if !ok {
				continue
			}
			for i := 0; i < tileCols; i++ {
				s.SetColored(arena.X+tx*tileCols+i, arena.Y+ty, g.runes[i], g.color)
			}
		}
	}

	// Characters draw over tiles, quantized to the cell their center
	// occupies. Cells are far coarser than world pixels, so the
	// foot-aligned pixel anchor collapses to the center cell here.
	sq := tiles.TileSize()
	for _, f := range frames {
		fr := f.Sheet.Frame(f.Frame)
		cx := arena.X + int(f.Pos.X/sq*tileCols)
		cy := arena.Y + int(f.Pos.Y/sq)
		if !arena.Contains(cx, cy) {
			continue
		}
		s.SetColored(cx, cy, fr.Glyph, fr.Color)
	}

	renderHUD(s, m, arena.Bottom())
}

// hudColors tints each player's status line to match its sprite skin.
var hudColors = map[core.PlayerID]core.Color{
	core.Player1: core.ColorBrightWhite,
	core.Player2: core.ColorGray,
}

// renderHUD writes one status line per player under the arena.
func renderHUD(s *core.Screen, m *game.Match, y int) {
	for i, id := range m.Players() {
		ch := m.Character(id)
		if ch == nil {
			continue
		}
		line := fmt.Sprintf("P%d  score %d  bombs %d/%d  fire %d  speed %.1f",
			id, m.Score(id),
			ch.BombCapacity()-ch.PlacedBombs(), ch.BombCapacity(),
			ch.FirePower(), ch.Speed())
		s.DrawTextColored(core.Max(0, (s.Width()-len(line))/2), y+i, line, hudColors[id])
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
