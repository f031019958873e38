// Package minefield implements the hexagonal minesweeper engine: mine placement,
// neighbor counts, the per-cell marking state machine and flood-fill reveal.
// It has no dependencies outside the standard library and hexgrid so it stays
// deterministic and testable.
package minefield

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/hexmines/internal/hexgrid"
)

// ErrInvalidConfiguration is returned when a minefield cannot be built from the
// requested extent and mine count.
var ErrInvalidConfiguration = errors.New("minefield: invalid configuration")

// Density is a mine-density fraction Num/Den of the total cell count.
type Density struct {
	Num int
	Den int
}

// MineCount returns floor(cells * Num / Den).
func (d Density) MineCount(cells int) int {
	if d.Den <= 0 || d.Num <= 0 || cells <= 0 {
		return 0
	}
	return cells * d.Num / d.Den
}

// Observer is notified whenever a cell changes appearance.
type Observer func(c hexgrid.Coord, a Appearance)

// Minefield is the arena of cells for one grid. Cells are stored densely by
// row-major index; coords maps each grid coordinate to its index.
type Minefield struct {
	columns     int
	rows        int
	orientation hexgrid.Orientation
	mines       int

	cells  []Cell
	coords map[hexgrid.Coord]int

	observer Observer
}

// Generate places mines uniformly at random and computes neighbor counts.
func Generate(rng *rand.Rand, columns, rows, mines int, o hexgrid.Orientation) (*Minefield, error) {
	if err := validate(columns, rows, mines); err != nil {
		return nil, err
	}
	return Place(columns, rows, o, sampleMines(rng, columns*rows, mines))
}

// Initialize generates a minefield whose mine count is derived from a density.
func Initialize(rng *rand.Rand, columns, rows int, d Density, o hexgrid.Orientation) (*Minefield, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: grid extent %dx%d", ErrInvalidConfiguration, columns, rows)
	}
	return Generate(rng, columns, rows, d.MineCount(columns*rows), o)
}

// Place builds a minefield with mines at the given 0-based row-major indices.
func Place(columns, rows int, o hexgrid.Orientation, mineIndices []int) (*Minefield, error) {
	if err := validate(columns, rows, len(mineIndices)); err != nil {
		return nil, err
	}

	total := columns * rows
	mined := make([]bool, total)
	for _, idx := range mineIndices {
		if idx < 0 || idx >= total {
			return nil, fmt.Errorf("%w: mine index %d outside [0, %d)", ErrInvalidConfiguration, idx, total)
		}
		if mined[idx] {
			return nil, fmt.Errorf("%w: duplicate mine index %d", ErrInvalidConfiguration, idx)
		}
		mined[idx] = true
	}

	f := &Minefield{
		columns:     columns,
		rows:        rows,
		orientation: o,
		mines:       len(mineIndices),
		cells:       make([]Cell, total),
		coords:      make(map[hexgrid.Coord]int, total),
	}

	// Placement is final before any count is computed.
	for _, c := range hexgrid.Coords(columns, rows) {
		idx := hexgrid.Index(c, columns)
		f.coords[c] = idx
		f.cells[idx] = Cell{Hidden: true, Mine: mined[idx]}
	}

	for c, idx := range f.coords {
		n := 0
		for _, nb := range hexgrid.Neighbors(c, columns, rows, o) {
			if mined[hexgrid.Index(nb, columns)] {
				n++
			}
		}
		f.cells[idx].count = n
		f.cells[idx].counted = true
	}

	return f, nil
}

// validate checks the extent and mine count preconditions.
func validate(columns, rows, mines int) error {
	if columns <= 0 || rows <= 0 {
		return fmt.Errorf("%w: grid extent %dx%d", ErrInvalidConfiguration, columns, rows)
	}
	total := columns * rows
	if mines < 0 || mines >= total {
		return fmt.Errorf("%w: %d mines for %d cells", ErrInvalidConfiguration, mines, total)
	}
	return nil
}

// sampleMines draws k distinct indices from [0, n).
// Rejection sampling degrades as k/n approaches 1, so dense boards use a
// partial Fisher-Yates shuffle instead.
func sampleMines(rng *rand.Rand, n, k int) []int {
	if k*2 > n {
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		for i := range k {
			j := i + rng.Intn(n-i)
			perm[i], perm[j] = perm[j], perm[i]
		}
		return perm[:k]
	}

	seen := make(map[int]struct{}, k)
	result := make([]int, 0, k)
	for len(result) < k {
		idx := rng.Intn(n)
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		result = append(result, idx)
	}
	return result
}

// SetObserver registers fn to be called on every appearance change. nil disables it.
func (f *Minefield) SetObserver(fn Observer) {
	f.observer = fn
}

// notify reports the current appearance of the cell at c.
func (f *Minefield) notify(c hexgrid.Coord, idx int) {
	if f.observer != nil {
		f.observer(c, f.cells[idx].Appearance())
	}
}

// Columns returns the grid width.
func (f *Minefield) Columns() int { return f.columns }

// Rows returns the grid height.
func (f *Minefield) Rows() int { return f.rows }

// Orientation returns the adjacency orientation.
func (f *Minefield) Orientation() hexgrid.Orientation { return f.orientation }

// MineCount returns the number of mines on the field.
func (f *Minefield) MineCount() int { return f.mines }

// Cell returns a copy of the cell at c.
func (f *Minefield) Cell(c hexgrid.Coord) (Cell, bool) {
	idx, ok := f.coords[c]
	if !ok {
		return Cell{}, false
	}
	return f.cells[idx], true
}

// Appearance returns the visual state of the cell at c (VisualHidden if missing).
func (f *Minefield) Appearance(c hexgrid.Coord) Appearance {
	cell, ok := f.Cell(c)
	if !ok {
		return Appearance{Visual: VisualHidden}
	}
	return cell.Appearance()
}

// Neighbors returns the in-grid neighbors of c.
func (f *Minefield) Neighbors(c hexgrid.Coord) []hexgrid.Coord {
	return hexgrid.Neighbors(c, f.columns, f.rows, f.orientation)
}

// Mines returns the coordinates of all mined cells in row-major order.
func (f *Minefield) Mines() []hexgrid.Coord {
	result := make([]hexgrid.Coord, 0, f.mines)
	for idx, cell := range f.cells {
		if cell.Mine {
			result = append(result, hexgrid.FromIndex(idx, f.columns))
		}
	}
	return result
}

// Won reports whether every non-mine cell is revealed.
func (f *Minefield) Won() bool {
	for _, cell := range f.cells {
		if !cell.Mine && cell.Hidden {
			return false
		}
	}
	return true
}

// Lost reports whether any mine has been revealed.
func (f *Minefield) Lost() bool {
	for _, cell := range f.cells {
		if cell.Exploded() {
			return true
		}
	}
	return false
}

// Stats summarizes the field for HUDs and result records.
type Stats struct {
	Cells     int
	Mines     int
	Revealed  int // Revealed non-mine cells
	Flags     int
	Remaining int // Mines minus flags, may go negative
}

// Stats returns the current field statistics.
func (f *Minefield) Stats() Stats {
	s := Stats{Cells: len(f.cells), Mines: f.mines}
	for _, cell := range f.cells {
		if !cell.Hidden && !cell.Mine {
			s.Revealed++
		}
		if cell.Hidden && cell.Marked == MarkFlag {
			s.Flags++
		}
	}
	s.Remaining = s.Mines - s.Flags
	return s
}

// FirstZero picks a random hidden safe cell with no mined neighbors.
// Returns false if the field has none.
func (f *Minefield) FirstZero(rng *rand.Rand) (hexgrid.Coord, bool) {
	var zeros []int
	for idx, cell := range f.cells {
		if !cell.Mine && cell.Hidden && cell.count == 0 {
			zeros = append(zeros, idx)
		}
	}
	if len(zeros) == 0 {
		return hexgrid.Coord{}, false
	}
	return hexgrid.FromIndex(zeros[rng.Intn(len(zeros))], f.columns), true
}
