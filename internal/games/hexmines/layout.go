package hexmines

import (
	"github.com/vovakirdan/hexmines/internal/core"
	"github.com/vovakirdan/hexmines/internal/hexgrid"
)

// Each cell is drawn as a three-character token such as "[ ]" or " 3 ".
const (
	tokenWidth   = 3
	hudHeight    = 3
	footerHeight = 2
)

// layout maps grid coordinates to screen positions and back.
//
// Flat-top boards place columns side by side with odd columns dropped by one
// line, two lines per row. Pointy-top boards use one line per row with odd
// rows indented by half a cell.
type layout struct {
	columns     int
	rows        int
	orientation hexgrid.Orientation
	originX     int
	originY     int
}

func newLayout(columns, rows int, o hexgrid.Orientation) layout {
	return layout{columns: columns, rows: rows, orientation: o}
}

// pitch returns the horizontal distance between adjacent columns.
func (l layout) pitch() int {
	if l.orientation == hexgrid.Pointy {
		return tokenWidth + 1
	}
	return tokenWidth
}

// size returns the board's width and height in characters.
func (l layout) size() (w, h int) {
	if l.orientation == hexgrid.Pointy {
		w = l.columns * l.pitch()
		if l.rows > 1 {
			w += l.pitch() / 2
		}
		return w, l.rows
	}
	h = l.rows*2 - 1
	if l.columns > 1 {
		h++
	}
	return l.columns * l.pitch(), h
}

// rect returns the screen area of a cell's token.
func (l layout) rect(c hexgrid.Coord) core.Rect {
	x := l.originX + c.Col*l.pitch()
	y := l.originY
	if l.orientation == hexgrid.Pointy {
		x += (c.Row & 1) * (l.pitch() / 2)
		y += c.Row
	} else {
		y += c.Row*2 + (c.Col & 1)
	}
	return core.NewRect(x, y, tokenWidth, 1)
}

// hit returns the cell whose token covers screen position (x, y).
func (l layout) hit(x, y int) (hexgrid.Coord, bool) {
	var c hexgrid.Coord
	dx, dy := x-l.originX, y-l.originY
	if dx < 0 || dy < 0 {
		return c, false
	}

	if l.orientation == hexgrid.Pointy {
		c.Row = dy
		dx -= (c.Row & 1) * (l.pitch() / 2)
		if dx < 0 {
			return c, false
		}
		c.Col = dx / l.pitch()
	} else {
		c.Col = dx / l.pitch()
		dy -= c.Col & 1
		if dy < 0 || dy%2 != 0 {
			return c, false
		}
		c.Row = dy / 2
	}

	if !hexgrid.InBounds(c, l.columns, l.rows) || !l.rect(c).Contains(x, y) {
		return hexgrid.Coord{}, false
	}
	return c, true
}
