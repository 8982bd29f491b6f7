package sprite

import "bomberboy/internal/core"

// Frame identifiers shared by every bomberboy skin. Stances are single
// frames; walking is a two-frame cycle; winning and dying are fixed
// sequences matching the clip tables in the game package.
const (
	StandUp    FrameID = "up"
	StandDown  FrameID = "down"
	StandLeft  FrameID = "left"
	StandRight FrameID = "right"

	MoveUp1    FrameID = "move_up1"
	MoveUp2    FrameID = "move_up2"
	MoveDown1  FrameID = "move_down1"
	MoveDown2  FrameID = "move_down2"
	MoveLeft1  FrameID = "move_left1"
	MoveLeft2  FrameID = "move_left2"
	MoveRight1 FrameID = "move_right1"
	MoveRight2 FrameID = "move_right2"

	Win1 FrameID = "win1"
	Win2 FrameID = "win2"
	Win3 FrameID = "win3"

	DieDown  FrameID = "die_down"
	DieRight FrameID = "die_right"
	DieUp    FrameID = "die_up"
	DieLeft  FrameID = "die_left"
	Die1     FrameID = "die1"
	Die3     FrameID = "die3"
	Die4     FrameID = "die4"
	Die5     FrameID = "die5"
	Die6     FrameID = "die6"
)

// bomberboySheet builds a skin. Walk frames are one pixel taller than
// stances; the dying fall shrinks toward the ground.
func bomberboySheet(name string, c core.Color) *Sheet {
	return NewSheet(name, map[FrameID]Frame{
		StandUp:    {Glyph: '▲', Color: c, HeightPx: 34},
		StandDown:  {Glyph: '▼', Color: c, HeightPx: 34},
		StandLeft:  {Glyph: '◄', Color: c, HeightPx: 34},
		StandRight: {Glyph: '►', Color: c, HeightPx: 34},

		MoveUp1:    {Glyph: '▲', Color: c, HeightPx: 35},
		MoveUp2:    {Glyph: '△', Color: c, HeightPx: 34},
		MoveDown1:  {Glyph: '▼', Color: c, HeightPx: 35},
		MoveDown2:  {Glyph: '▽', Color: c, HeightPx: 34},
		MoveLeft1:  {Glyph: '◄', Color: c, HeightPx: 35},
		MoveLeft2:  {Glyph: '◁', Color: c, HeightPx: 34},
		MoveRight1: {Glyph: '►', Color: c, HeightPx: 35},
		MoveRight2: {Glyph: '▷', Color: c, HeightPx: 34},

		Win1: {Glyph: '☺', Color: core.ColorBrightYellow, HeightPx: 34},
		Win2: {Glyph: '★', Color: core.ColorBrightYellow, HeightPx: 38},
		Win3: {Glyph: '☼', Color: core.ColorBrightYellow, HeightPx: 40},

		DieDown:  {Glyph: '▼', Color: core.ColorBrightRed, HeightPx: 34},
		DieRight: {Glyph: '►', Color: core.ColorBrightRed, HeightPx: 34},
		DieUp:    {Glyph: '▲', Color: core.ColorBrightRed, HeightPx: 34},
		DieLeft:  {Glyph: '◄', Color: core.ColorBrightRed, HeightPx: 34},
		Die1:     {Glyph: '×', Color: core.ColorBrightRed, HeightPx: 30},
		Die3:     {Glyph: '✶', Color: core.ColorRed, HeightPx: 24},
		Die4:     {Glyph: '∗', Color: core.ColorRed, HeightPx: 18},
		Die5:     {Glyph: '·', Color: core.ColorGray, HeightPx: 12},
		Die6:     {Glyph: ' ', Color: core.ColorGray, HeightPx: 8},
	})
}

func init() {
	Register(bomberboySheet("bomberboy_white", core.ColorBrightWhite))
	Register(bomberboySheet("bomberboy_black", core.ColorGray))
}
