// Package hexgrid provides offset-coordinate hexagonal grid geometry:
// coordinates, orientations and 6-neighbor adjacency.
package hexgrid

import (
	"fmt"
	"strings"
)

// Coord identifies a cell by column and row (offset coordinates).
type Coord struct {
	Col int
	Row int
}

// String returns "(col,row)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Orientation selects which offsets count as neighbors.
type Orientation int

const (
	// Flat is a flat-top layout where odd columns are shifted down half a cell.
	Flat Orientation = iota
	// Pointy is a pointy-top layout where odd rows are shifted right half a cell.
	Pointy
)

// String returns the config name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Flat:
		return "flat"
	case Pointy:
		return "pointy"
	default:
		return "unknown"
	}
}

// ParseOrientation converts a config string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat", "vertical":
		return Flat, nil
	case "pointy", "horizontal":
		return Pointy, nil
	default:
		return Flat, fmt.Errorf("hexgrid: unknown orientation %q", s)
	}
}

// Neighbor offsets as (dcol, drow), indexed by parity of the shifted axis.
var (
	flatOffsets = [2][6]Coord{
		// even columns
		{{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {0, 1}},
		// odd columns
		{{1, 1}, {1, 0}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}},
	}
	pointyOffsets = [2][6]Coord{
		// even rows
		{{1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}},
		// odd rows
		{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {0, 1}, {1, 1}},
	}
)

// InBounds reports whether c lies inside a columns x rows grid.
func InBounds(c Coord, columns, rows int) bool {
	return c.Col >= 0 && c.Col < columns && c.Row >= 0 && c.Row < rows
}

// Neighbors returns the in-bounds neighbors of c. Out-of-bounds offsets are dropped,
// so edge cells have fewer than six neighbors.
func Neighbors(c Coord, columns, rows int, o Orientation) []Coord {
	var offsets [6]Coord
	if o == Pointy {
		offsets = pointyOffsets[c.Row&1]
	} else {
		offsets = flatOffsets[c.Col&1]
	}

	result := make([]Coord, 0, 6)
	for _, d := range offsets {
		n := Coord{Col: c.Col + d.Col, Row: c.Row + d.Row}
		if InBounds(n, columns, rows) {
			result = append(result, n)
		}
	}
	return result
}

// Index returns the dense row-major index of c (0-based).
func Index(c Coord, columns int) int {
	return c.Row*columns + c.Col
}

// FromIndex is the inverse of Index.
func FromIndex(i, columns int) Coord {
	return Coord{Col: i % columns, Row: i / columns}
}

// Coords returns every coordinate of the grid in row-major order.
func Coords(columns, rows int) []Coord {
	if columns <= 0 || rows <= 0 {
		return nil
	}
	result := make([]Coord, 0, columns*rows)
	for row := range rows {
		for col := range columns {
			result = append(result, Coord{Col: col, Row: row})
		}
	}
	return result
}
