package minefield

import "github.com/vovakirdan/hexmines/internal/hexgrid"

// Button is the pointer button of a click.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonMiddle:
		return "Middle"
	default:
		return "Unknown"
	}
}

// ClickResult describes what a click changed.
type ClickResult struct {
	Revealed []hexgrid.Coord // Cells newly revealed, in reveal order
	Marked   bool            // A marker cycled
	Exploded bool            // The click revealed a mine
}

// Changed reports whether the click had any effect.
func (r ClickResult) Changed() bool {
	return len(r.Revealed) > 0 || r.Marked
}

// RevealFrom reveals start and flood-fills through zero-count cells breadth-first.
// Already revealed cells are skipped, which doubles as the visited check.
// A mined start is revealed alone. Returns the newly revealed cells.
func (f *Minefield) RevealFrom(start hexgrid.Coord) []hexgrid.Coord {
	if _, ok := f.coords[start]; !ok {
		return nil
	}

	var revealed []hexgrid.Coord
	queue := []hexgrid.Coord{start}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		idx, ok := f.coords[c]
		if !ok {
			continue
		}
		cell := &f.cells[idx]
		if !cell.Hidden {
			continue
		}

		cell.reveal()
		revealed = append(revealed, c)
		f.notify(c, idx)

		if cell.Mine || cell.count != 0 {
			continue
		}
		for _, nb := range f.Neighbors(c) {
			if _, exists := f.coords[nb]; exists {
				queue = append(queue, nb)
			}
		}
	}

	return revealed
}

// CycleMark advances the marker of a hidden cell None -> Flag -> Question -> None.
// Revealed or missing cells are left alone. Returns true if the marker changed.
func (f *Minefield) CycleMark(c hexgrid.Coord) bool {
	idx, ok := f.coords[c]
	if !ok {
		return false
	}
	cell := &f.cells[idx]
	if !cell.Hidden {
		return false
	}
	cell.Marked = cell.Marked.next()
	f.notify(c, idx)
	return true
}

// HandleClick routes a pointer click on c. Missing cells are a silent no-op.
func (f *Minefield) HandleClick(c hexgrid.Coord, b Button) ClickResult {
	idx, ok := f.coords[c]
	if !ok {
		return ClickResult{}
	}
	cell := &f.cells[idx]

	switch b {
	case ButtonPrimary:
		// Flagged cells are protected from accidental reveal.
		if !cell.Hidden || cell.Marked == MarkFlag {
			return ClickResult{}
		}
		if cell.Mine {
			cell.reveal()
			f.notify(c, idx)
			return ClickResult{Revealed: []hexgrid.Coord{c}, Exploded: true}
		}
		return ClickResult{Revealed: f.RevealFrom(c)}

	case ButtonSecondary:
		return ClickResult{Marked: f.CycleMark(c)}
	}

	return ClickResult{}
}

// Dispatch routes a click to f. A nil field means generation has not finished
// and the click is ignored.
func Dispatch(f *Minefield, c hexgrid.Coord, b Button) ClickResult {
	if f == nil {
		return ClickResult{}
	}
	return f.HandleClick(c, b)
}
