package battleship

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship/core"
)

const (
	cellWidth    = 3 // " ~ ", or "[~]" under the cursor
	hudHeight    = 3 // Title, status line, spacer
	footerHeight = 3 // Spacer, last shot message, game-over line
	legendGap    = 3
	legendWidth  = 32
)

// Board markers.
const (
	runeWater = '~'
	runeMiss  = 'o'
	runeHit   = 'X'
	runeSunk  = '#'

	runeCursorL = '['
	runeCursorR = ']'
)

// boardSize returns the width and height of the board block including the
// header row, row labels and legend.
func boardSize(g *core.Grid) (int, int) {
	w := rowLabelWidth(g) + 1 + g.Cols*cellWidth + legendGap + legendWidth
	legendH := len(g.Ships()) + 3 // Title, ships, spacer, marker key
	return w, platformcore.Max(g.Rows+1, legendH)
}

func rowLabelWidth(g *core.Grid) int {
	return len(fmt.Sprint(g.Rows))
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.genErr != nil {
		g.renderError(dst)
		return
	}
	if g.grid == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := boardSize(g.grid)
	boardX := platformcore.Max((g.screenW-w)/2, 0)
	boardY := hudHeight

	g.renderHUD(dst)
	g.renderBoard(dst, boardX, boardY)
	g.renderLegend(dst, boardX+w-legendWidth, boardY)
	g.renderFooter(dst, boardY+h+1)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorYellow)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorDefault)
}

// renderError shows why no board could be built. No grid is drawn.
func (g *Game) renderError(dst *platformcore.Screen) {
	y := platformcore.Max(g.screenH/2-2, 0)
	dst.DrawTextCentered(y, "Could not build a board", platformcore.ColorBrightRed)
	dst.DrawTextCentered(y+1, truncate(g.genErr.Error(), g.screenW), platformcore.ColorDefault)
	hint := fmt.Sprintf("R retry  M switch to %s  Q quit", modeLabel(otherMode(g.mode)))
	dst.DrawTextCentered(y+3, hint, platformcore.ColorGray)
}

// renderHUD draws the title and the status line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextCentered(0, "B A T T L E S H I P", platformcore.ColorBrightWhite)

	status := fmt.Sprintf("Mode: %s   Shots: %d   Hits: %d   Board: %s",
		modeLabel(g.mode), g.shots, g.grid.HitCount(), g.boardID)
	dst.DrawTextCentered(1, status, platformcore.ColorCyan)
}

// renderBoard draws column letters, row numbers and every cell.
func (g *Game) renderBoard(dst *platformcore.Screen, x, y int) {
	labelW := rowLabelWidth(g.grid)
	cellsX := x + labelW + 1

	for c := 0; c < g.grid.Cols; c++ {
		dst.DrawTextColored(cellsX+c*cellWidth+1, y, core.ColumnLabel(c), platformcore.ColorGray)
	}

	for r := 0; r < g.grid.Rows; r++ {
		py := y + 1 + r
		dst.DrawTextColored(x, py, fmt.Sprintf("%*d", labelW, r+1), platformcore.ColorGray)

		for c := 0; c < g.grid.Cols; c++ {
			px := cellsX + c*cellWidth
			pos := core.C(r, c)
			ch, color := g.cellLook(g.grid.Get(pos))
			dst.SetColored(px+1, py, ch, color)

			if pos == g.cursor && !g.gameOver {
				dst.SetColored(px, py, runeCursorL, platformcore.ColorYellow)
				dst.SetColored(px+2, py, runeCursorR, platformcore.ColorYellow)
			}
		}
	}
}

// cellLook picks the rune and color for a board cell.
func (g *Game) cellLook(cell core.Cell) (rune, platformcore.Color) {
	switch {
	case cell.IsHit && g.grid.IsSunk(cell.Ship):
		return runeSunk, platformcore.ColorBrightRed
	case cell.IsHit:
		return runeHit, platformcore.ColorRed
	case cell.IsMissed:
		return runeMiss, platformcore.ColorWhite
	case cell.Occupied && (g.reveal || g.gameOver):
		return cell.Ship.Initial(), platformcore.ColorGreen
	default:
		return runeWater, platformcore.ColorBlue
	}
}

// renderLegend lists every ship on the board with its length and status.
func (g *Game) renderLegend(dst *platformcore.Screen, x, y int) {
	dst.DrawTextColored(x, y, "Fleet", platformcore.ColorBrightWhite)

	for i, id := range g.grid.Ships() {
		cells := g.grid.ShipCells(id)
		hits := 0
		for _, c := range cells {
			if g.grid.Get(c).IsHit {
				hits++
			}
		}

		line := fmt.Sprintf("%c %-18s %d", id.Initial(), truncate(g.shipName(id), 18), len(cells))
		dst.DrawTextColored(x, y+1+i, line, platformcore.ColorDefault)

		status, color := "afloat", platformcore.ColorGreen
		switch {
		case hits == len(cells):
			status, color = "SUNK", platformcore.ColorBrightRed
		case hits > 0:
			status, color = "damaged", platformcore.ColorYellow
		}
		dst.DrawTextColored(x+len(line)+1, y+1+i, status, color)
	}

	keyY := y + len(g.grid.Ships()) + 2
	dst.DrawTextColored(x, keyY, "~ water  o miss  X hit  # sunk", platformcore.ColorGray)
}

// renderFooter draws the last shot message and the game-over banner.
func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	if g.message != "" {
		dst.DrawTextCentered(y, g.message, platformcore.ColorWhite)
	}
	if g.gameOver {
		banner := fmt.Sprintf("All ships sunk in %d shots!  R new board  M switch to %s",
			g.shots, modeLabel(otherMode(g.mode)))
		dst.DrawTextCentered(y+1, banner, platformcore.ColorYellow)
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return strings.TrimSpace(string(r[:n-3])) + "..."
}
