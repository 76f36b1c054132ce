package flap

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flap/internal/core"
)

// Visual characters for rendering
const (
	FlyerChar    = '@'
	RockChar     = '█'
	RockDownChar = '▼' // Leading edge of a rock falling down
	RockUpChar   = '▲' // Leading edge of a rock rising up
	CoinChar     = 'o'
)

// viewport maps playfield coordinates to the screen area inside the border.
type viewport struct {
	left, top     int
	width, height int
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		left:   1,
		top:    1,
		width:  max(dst.Width()-2, 1),
		height: max(dst.Height()-2, 1),
	}
}

// col converts a playfield x to a screen column.
func (v viewport) col(x float64) int {
	return v.left + int(math.Floor((x+PlayfieldBound)/(2*PlayfieldBound)*float64(v.width)))
}

// row converts a playfield y to a screen row; y up is row down.
func (v viewport) row(y float64) int {
	return v.top + int(math.Floor((PlayfieldBound-y)/(2*PlayfieldBound)*float64(v.height)))
}

// cells returns the inclusive cell range covered by o, clipped to the viewport.
// ok is false when nothing of o is visible.
func (v viewport) cells(o PhysObj) (x0, y0, x1, y1 int, ok bool) {
	b := o.Box()
	x0 = max(v.col(b.Left()), v.left)
	x1 = min(v.col(b.Right()), v.left+v.width-1)
	y0 = max(v.row(b.Top()), v.top)
	y1 = min(v.row(b.Bottom()), v.top+v.height-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	dst.DrawBox(0, 0, dst.Width(), dst.Height(), core.ColorGray)
	RenderState(dst, g.state)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.state.Dead {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score))
	}
}

// RenderState draws the entities of s and the score onto dst.
func RenderState(dst *core.Screen, s *State) {
	v := newViewport(dst)

	for _, coin := range s.Coins {
		drawCoin(dst, v, coin)
	}
	for _, rock := range s.Rocks {
		drawRock(dst, v, rock)
	}
	drawFlyer(dst, v, s.Flyer)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorBrightWhite)
}

func drawCoin(dst *core.Screen, v viewport, o PhysObj) {
	x0, y0, x1, y1, ok := v.cells(o)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, CoinChar, core.ColorBrightYellow)
		}
	}
}

// drawRock fills the rock's cells and marks the edge it is moving toward.
func drawRock(dst *core.Screen, v viewport, o PhysObj) {
	x0, y0, x1, y1, ok := v.cells(o)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, RockChar, core.ColorGray)
		}
	}

	edgeY, edge := y1, RockDownChar
	if o.VY > 0 {
		edgeY, edge = y0, RockUpChar
	}
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, edgeY, edge, core.ColorOrange)
	}
}

func drawFlyer(dst *core.Screen, v viewport, o PhysObj) {
	x0, y0, x1, y1, ok := v.cells(o)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, FlyerChar, core.ColorBrightCyan)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
