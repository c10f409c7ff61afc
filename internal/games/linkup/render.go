package linkup

import (
	"fmt"

	"github.com/danilvpetrov/linkup/internal/core"
	"github.com/danilvpetrov/linkup/internal/games/linkup/engine"
)

// tileGlyph maps tile types to their display rune.
var tileGlyph = map[engine.Type]rune{
	engine.TypeGold:    'G',
	engine.TypeWood:    'W',
	engine.TypeStone:   'S',
	engine.TypeCrystal: 'C',
	engine.TypeFood:    'F',
}

// tileColor maps tile types to their display color.
var tileColor = map[engine.Type]core.Color{
	engine.TypeGold:    core.ColorYellow,
	engine.TypeWood:    core.ColorGreen,
	engine.TypeStone:   core.ColorGray,
	engine.TypeCrystal: core.ColorCyan,
	engine.TypeFood:    core.ColorRed,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderFlashPath(dst)
	g.renderCursor(dst)
	g.renderFooter(dst)

	switch {
	case g.gameOver && g.mode == ModeTimed:
		g.renderOverlay(dst, "Time's up!", fmt.Sprintf("Final Score: %d — Press R to restart", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeTimed {
		secs := g.SecondsLeft()
		hud = fmt.Sprintf(" Linkup (Timed) — Score: %d  Boards: %d  Time: %02d:%02d",
			g.score, g.boardsCleared, secs/60, secs%60)
	} else {
		hud = fmt.Sprintf(" Linkup — Score: %d  Boards: %d  Pairs: %d",
			g.score, g.boardsCleared, g.board.Pairs())
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the tile grid. Each tile occupies two columns.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.board.Grid()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			tile, err := grid.At(row, col)
			if err != nil {
				continue
			}

			x, y := g.tileScreenPos(row, col)
			if tile.IsEmpty() {
				dst.SetCell(x, y, '·', core.ColorGray)
				continue
			}

			glyph := tileGlyph[tile.Type]
			color := tileColor[tile.Type]
			if tile.State == engine.StateSelected {
				color = core.ColorBrightWhite
			}
			dst.SetCell(x, y, glyph, color)
		}
	}
}

// renderFlashPath draws the connecting path of the last elimination.
func (g *Game) renderFlashPath(dst *core.Screen) {
	if g.flashTicks == 0 || len(g.flashPath) < 2 {
		return
	}

	for i := 0; i < len(g.flashPath)-1; i++ {
		from, to := g.flashPath[i], g.flashPath[i+1]
		g.drawSegment(dst, from, to)
	}
}

// drawSegment marks every cell on a straight segment, endpoints included.
// Path waypoints may lie on the border ring just outside the grid; the
// layout keeps enough margin for them.
func (g *Game) drawSegment(dst *core.Screen, from, to engine.Point) {
	dr := sign(to.Row - from.Row)
	dc := sign(to.Col - from.Col)

	p := from
	for {
		x, y := g.tileScreenPos(p.Row, p.Col)
		dst.SetCell(x, y, '+', core.ColorBrightYellow)
		if p == to {
			return
		}
		p.Row += dr
		p.Col += dc
	}
}

// renderCursor draws brackets around the tile under the cursor.
func (g *Game) renderCursor(dst *core.Screen) {
	x, y := g.tileScreenPos(g.cursor.Row, g.cursor.Col)
	dst.SetCell(x-1, y, '[', core.ColorBrightWhite)
	dst.SetCell(x+1, y, ']', core.ColorBrightWhite)
}

// renderFooter draws control hints below the board.
func (g *Game) renderFooter(dst *core.Screen) {
	footer := "Arrows/WASD: Move  Space: Select  P: Pause  Q: Quit"
	y := g.boardOffsetY + g.board.Grid().Rows() + 1
	x := (dst.Width() - len(footer)) / 2
	dst.DrawTextColored(x, y, footer, core.ColorGray)
}

// tileScreenPos converts a tile coordinate to its screen position.
func (g *Game) tileScreenPos(row, col int) (x, y int) {
	return g.boardOffsetX + col*2, g.boardOffsetY + row
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
