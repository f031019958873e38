package hexmines

import (
	"fmt"

	"github.com/vovakirdan/hexmines/internal/core"
	"github.com/vovakirdan/hexmines/internal/hexgrid"
	"github.com/vovakirdan/hexmines/internal/minefield"
)

// numberColors maps neighbor counts to colors; index 0 is unused.
var numberColors = [...]core.Color{
	core.ColorGray,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorCyan,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.setupErr != nil {
		g.renderOverlay(dst, "Cannot build board", g.setupErr.Error())
		return
	}
	if g.tooSmall {
		w, h := g.MinScreenSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}
	if g.field == nil {
		return
	}

	g.renderBoard(dst, g.gameOver && !g.won)
	g.renderFooter(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("Score: %d  Time: %ds", g.Score(), g.ElapsedSeconds()))
	case g.gameOver:
		g.renderBanner(dst, "BOOM! Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// RenderSolution draws the board with every cell uncovered.
// Used by the preview command to inspect generated boards.
func (g *Game) RenderSolution(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)
	if g.field == nil {
		return
	}
	for _, c := range hexgrid.Coords(g.field.Columns(), g.field.Rows()) {
		cell, _ := g.field.Cell(c)
		r := g.layout.rect(c)
		if cell.Mine {
			dst.DrawTextColored(r.X, r.Y, "[*]", core.ColorRed)
			continue
		}
		n, _ := cell.NeighborMines()
		token, color := openToken(n)
		dst.DrawTextColored(r.X, r.Y, token, color)
	}
}

// renderHUD draws the title line, counters and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	title := fmt.Sprintf(" %s  %s  %dx%d", g.Title(), g.preset.Title(), g.cfg.Board.Columns, g.cfg.Board.Rows)
	dst.DrawTextColored(0, 0, title, core.ColorBrightCyan)

	if g.field != nil {
		stats := g.field.Stats()
		status := fmt.Sprintf(" Mines: %d  Left: %d  Open: %d/%d  Time: %ds  Score: %d",
			stats.Mines, stats.Remaining, stats.Revealed, stats.Cells-stats.Mines, g.ElapsedSeconds(), g.Score())
		dst.DrawText(0, 1, status)
	}

	for x := range dst.Width() {
		dst.SetColored(x, hudHeight-1, '─', core.ColorGray)
	}
}

// renderFooter draws the key help below the board.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	dst.DrawTextColored(0, y, " arrows move  space reveal  f mark  mouse L/R  p pause  r restart  q quit", core.ColorGray)
}

// renderBoard draws every cell token. When showMines is set, hidden mines
// are uncovered for the loss overlay.
func (g *Game) renderBoard(dst *core.Screen, showMines bool) {
	for _, c := range hexgrid.Coords(g.field.Columns(), g.field.Rows()) {
		r := g.layout.rect(c)
		token, color := g.cellToken(c, showMines)
		if c == g.cursor && !g.gameOver {
			token = "<" + token[1:2] + ">"
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(r.X, r.Y, token, color)
	}
}

// cellToken selects the three-character token and color for a cell.
func (g *Game) cellToken(c hexgrid.Coord, showMines bool) (string, core.Color) {
	a := g.field.Appearance(c)
	switch a.Visual {
	case minefield.VisualFlag:
		return "[F]", core.ColorRed
	case minefield.VisualQuestion:
		return "[?]", core.ColorYellow
	case minefield.VisualExploded:
		return "[X]", core.ColorBrightRed
	case minefield.VisualOpen:
		token, color := openToken(a.Number)
		if c == g.lastHit {
			color = core.ColorWhite
		}
		return token, color
	}
	if showMines {
		if cell, _ := g.field.Cell(c); cell.Mine {
			return "[*]", core.ColorRed
		}
	}
	return "[ ]", core.ColorDefault
}

// openToken returns the token for a revealed safe cell.
func openToken(n int) (string, core.Color) {
	if n <= 0 || n >= len(numberColors) {
		return " . ", core.ColorGray
	}
	return fmt.Sprintf(" %d ", n), numberColors[n]
}

// renderBanner draws a single-line message on the footer row.
func (g *Game) renderBanner(dst *core.Screen, msg string) {
	y := dst.Height() - 1
	for x := range dst.Width() {
		dst.Set(x, y, ' ')
	}
	dst.DrawTextCentered(y, msg, core.ColorBrightRed)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			top := y == box.Y || y == box.Bottom()-1
			side := x == box.X || x == box.Right()-1
			switch {
			case top && side:
				dst.Set(x, y, '+')
			case top:
				dst.Set(x, y, '-')
			case side:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
