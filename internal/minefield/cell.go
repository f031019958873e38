package minefield

// Marker is the player annotation on a hidden cell.
type Marker int

const (
	MarkNone Marker = iota
	MarkFlag
	MarkQuestion
)

// String returns a human-readable name for the marker.
func (m Marker) String() string {
	switch m {
	case MarkNone:
		return "None"
	case MarkFlag:
		return "Flag"
	case MarkQuestion:
		return "QuestionMark"
	default:
		return "Unknown"
	}
}

// next returns the marker that follows m in the None -> Flag -> Question cycle.
func (m Marker) next() Marker {
	switch m {
	case MarkNone:
		return MarkFlag
	case MarkFlag:
		return MarkQuestion
	default:
		return MarkNone
	}
}

// Cell is the per-tile minefield state.
type Cell struct {
	Hidden bool
	Mine   bool
	Marked Marker

	count   int
	counted bool
}

// NeighborMines returns the number of mined neighbors. ok is false only while the
// minefield is still being constructed.
func (c Cell) NeighborMines() (n int, ok bool) {
	return c.count, c.counted
}

// Exploded reports whether the cell is a revealed mine.
func (c Cell) Exploded() bool {
	return c.Mine && !c.Hidden
}

// reveal unhides the cell and clears its marker.
func (c *Cell) reveal() {
	c.Hidden = false
	c.Marked = MarkNone
}

// Visual is the kind of visual state a cell is shown in.
type Visual int

const (
	VisualHidden Visual = iota
	VisualFlag
	VisualQuestion
	VisualExploded
	VisualOpen
)

// Appearance selects how a cell should be drawn. Number is only meaningful for VisualOpen.
type Appearance struct {
	Visual Visual
	Number int
}

// Appearance returns the visual state of the cell.
func (c Cell) Appearance() Appearance {
	if c.Hidden {
		switch c.Marked {
		case MarkFlag:
			return Appearance{Visual: VisualFlag}
		case MarkQuestion:
			return Appearance{Visual: VisualQuestion}
		default:
			return Appearance{Visual: VisualHidden}
		}
	}
	if c.Mine {
		return Appearance{Visual: VisualExploded}
	}
	return Appearance{Visual: VisualOpen, Number: c.count}
}
