package minefield

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/hexmines/internal/hexgrid"
)

func revealedSet(f *Minefield) map[hexgrid.Coord]bool {
	result := make(map[hexgrid.Coord]bool)
	for _, c := range hexgrid.Coords(f.Columns(), f.Rows()) {
		if cell, _ := f.Cell(c); !cell.Hidden {
			result[c] = true
		}
	}
	return result
}

func TestRevealScenarioSingleMine(t *testing.T) {
	// Index 4 on a 4x4 grid is (col 0, row 1).
	f, err := Place(4, 4, hexgrid.Flat, []int{4})
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	start := hexgrid.Coord{Col: 3, Row: 3}
	startCell, _ := f.Cell(start)
	if n, _ := startCell.NeighborMines(); n != 0 {
		t.Fatalf("Start cell should have %d neighbor mines, expected 0", n)
	}

	res := f.HandleClick(start, ButtonPrimary)
	if res.Exploded {
		t.Fatal("Click on safe cell should not explode")
	}

	revealed := revealedSet(f)
	if len(revealed) != 14 || len(res.Revealed) != 14 {
		t.Errorf("Expected 14 revealed cells, got %d (result %d)", len(revealed), len(res.Revealed))
	}
	if revealed[hexgrid.Coord{Col: 0, Row: 1}] {
		t.Error("Mine should stay hidden")
	}
	// (0,0) borders only the mine and a numbered cell, so the cascade never reaches it.
	if revealed[hexgrid.Coord{Col: 0, Row: 0}] {
		t.Error("(0,0) is not adjacent to the zero region and should stay hidden")
	}
	for _, c := range []hexgrid.Coord{{Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 0, Row: 2}} {
		if !revealed[c] {
			t.Errorf("Border cell %v should be revealed", c)
		}
		cell, _ := f.Cell(c)
		if n, _ := cell.NeighborMines(); n != 1 {
			t.Errorf("Border cell %v count = %d, expected 1", c, n)
		}
	}
	if f.Won() {
		t.Error("Game should not be won with (0,0) hidden")
	}

	f.HandleClick(hexgrid.Coord{Col: 0, Row: 0}, ButtonPrimary)
	if !f.Won() || f.Lost() {
		t.Errorf("Expected won after revealing last safe cell, won=%v lost=%v", f.Won(), f.Lost())
	}
}

func TestRevealNoMinesFloodsEverything(t *testing.T) {
	for _, o := range []hexgrid.Orientation{hexgrid.Flat, hexgrid.Pointy} {
		f, err := Generate(rand.New(rand.NewSource(1)), 9, 6, 0, o)
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}
		res := f.HandleClick(hexgrid.Coord{Col: 4, Row: 2}, ButtonPrimary)
		if len(res.Revealed) != 54 {
			t.Errorf("%v: expected all 54 cells revealed, got %d", o, len(res.Revealed))
		}
		if !f.Won() {
			t.Errorf("%v: empty field should be won after one click", o)
		}
	}
}

func TestRevealCascadeIsExactRegion(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		f, err := Generate(rng, 12, 10, 18, hexgrid.Pointy)
		if err != nil {
			t.Fatalf("Generate() failed: %v", err)
		}
		start, ok := f.FirstZero(rng)
		if !ok {
			continue
		}
		f.RevealFrom(start)
		revealed := revealedSet(f)

		for c := range revealed {
			cell, _ := f.Cell(c)
			if cell.Mine {
				t.Fatalf("seed %d: cascade revealed mine at %v", seed, c)
			}
			n, _ := cell.NeighborMines()
			// Zero cells inside the region must have every neighbor revealed.
			if n == 0 {
				for _, nb := range f.Neighbors(c) {
					if !revealed[nb] {
						t.Errorf("seed %d: zero cell %v has hidden neighbor %v", seed, c, nb)
					}
				}
			}
			// Every revealed cell other than start is reached through a revealed zero cell.
			if c == start {
				continue
			}
			reached := false
			for _, nb := range f.Neighbors(c) {
				nc, _ := f.Cell(nb)
				if k, _ := nc.NeighborMines(); revealed[nb] && k == 0 {
					reached = true
					break
				}
			}
			if !reached {
				t.Errorf("seed %d: %v revealed without a revealed zero neighbor", seed, c)
			}
		}
	}
}

func TestRevealIdempotent(t *testing.T) {
	f, _ := Place(4, 4, hexgrid.Flat, []int{4})
	first := f.RevealFrom(hexgrid.Coord{Col: 3, Row: 3})
	before := revealedSet(f)

	second := f.RevealFrom(hexgrid.Coord{Col: 3, Row: 3})
	if len(first) == 0 {
		t.Fatal("First reveal should reveal cells")
	}
	if len(second) != 0 {
		t.Errorf("Second reveal should reveal nothing, got %v", second)
	}
	if len(revealedSet(f)) != len(before) {
		t.Error("Second reveal changed state")
	}
}

func TestRevealMonotonic(t *testing.T) {
	f, _ := Place(4, 4, hexgrid.Flat, []int{4})
	c := hexgrid.Coord{Col: 1, Row: 1}
	f.HandleClick(c, ButtonPrimary)

	for _, b := range []Button{ButtonSecondary, ButtonPrimary, ButtonSecondary, ButtonMiddle} {
		f.HandleClick(c, b)
		cell, _ := f.Cell(c)
		if cell.Hidden {
			t.Fatalf("Cell re-hidden after %v click", b)
		}
		if cell.Marked != MarkNone {
			t.Fatalf("Revealed cell marked %v after %v click", cell.Marked, b)
		}
	}
}

func TestMineExplodesWithoutCascade(t *testing.T) {
	f, _ := Place(4, 4, hexgrid.Flat, []int{4})
	res := f.HandleClick(hexgrid.Coord{Col: 0, Row: 1}, ButtonPrimary)

	if !res.Exploded || len(res.Revealed) != 1 {
		t.Errorf("Expected single exploded cell, got %+v", res)
	}
	if !f.Lost() {
		t.Error("Lost() should be true after explosion")
	}
	if len(revealedSet(f)) != 1 {
		t.Errorf("Explosion should reveal only the mine, got %d cells", len(revealedSet(f)))
	}
	if a := f.Appearance(hexgrid.Coord{Col: 0, Row: 1}); a.Visual != VisualExploded {
		t.Errorf("Exploded cell appearance = %v", a.Visual)
	}
}

func TestFlagProtectsFromReveal(t *testing.T) {
	f, _ := Place(4, 4, hexgrid.Flat, []int{4})
	for _, c := range []hexgrid.Coord{{Col: 0, Row: 1}, {Col: 3, Row: 3}} {
		f.HandleClick(c, ButtonSecondary)
		res := f.HandleClick(c, ButtonPrimary)
		if res.Changed() {
			t.Errorf("Primary click on flagged %v changed state: %+v", c, res)
		}
		cell, _ := f.Cell(c)
		if !cell.Hidden || cell.Marked != MarkFlag {
			t.Errorf("Flagged cell %v should stay hidden and flagged", c)
		}
	}
	if f.Lost() {
		t.Error("Flagged mine must not explode")
	}
}

func TestQuestionMarkedCellReveals(t *testing.T) {
	f, _ := Place(4, 4, hexgrid.Flat, []int{4})
	c := hexgrid.Coord{Col: 1, Row: 1}
	f.HandleClick(c, ButtonSecondary)
	f.HandleClick(c, ButtonSecondary)

	res := f.HandleClick(c, ButtonPrimary)
	if len(res.Revealed) != 1 {
		t.Fatalf("Expected numbered cell alone to be revealed, got %v", res.Revealed)
	}
	cell, _ := f.Cell(c)
	if cell.Hidden || cell.Marked != MarkNone {
		t.Errorf("Revealed cell should be unmarked, got hidden=%v marked=%v", cell.Hidden, cell.Marked)
	}
}

func TestMarkCycle(t *testing.T) {
	f, _ := Place(3, 3, hexgrid.Pointy, nil)
	c := hexgrid.Coord{Col: 1, Row: 1}

	expected := []Marker{MarkFlag, MarkQuestion, MarkNone}
	for i, want := range expected {
		if !f.CycleMark(c) {
			t.Fatalf("CycleMark step %d reported no change", i)
		}
		cell, _ := f.Cell(c)
		if cell.Marked != want {
			t.Errorf("After %d secondary clicks marker = %v, expected %v", i+1, cell.Marked, want)
		}
	}
}

func TestMissingCellIsNoOp(t *testing.T) {
	f, _ := Place(4, 4, hexgrid.Flat, []int{4})
	for _, b := range []Button{ButtonPrimary, ButtonSecondary} {
		res := f.HandleClick(hexgrid.Coord{Col: 9, Row: -2}, b)
		if res.Changed() || res.Exploded {
			t.Errorf("%v click outside grid should do nothing, got %+v", b, res)
		}
	}
	if got := f.RevealFrom(hexgrid.Coord{Col: 4, Row: 0}); got != nil {
		t.Errorf("RevealFrom outside grid = %v, expected nil", got)
	}
}

func TestDispatchNilField(t *testing.T) {
	res := Dispatch(nil, hexgrid.Coord{}, ButtonPrimary)
	if res.Changed() {
		t.Error("Dispatch on nil field should be ignored")
	}
}

func TestObserverSeesAppearanceChanges(t *testing.T) {
	f, _ := Place(4, 4, hexgrid.Flat, []int{4})

	seen := make(map[hexgrid.Coord]Appearance)
	f.SetObserver(func(c hexgrid.Coord, a Appearance) {
		seen[c] = a
	})

	f.HandleClick(hexgrid.Coord{Col: 0, Row: 0}, ButtonSecondary)
	if seen[hexgrid.Coord{Col: 0, Row: 0}].Visual != VisualFlag {
		t.Errorf("Observer should see flag, got %+v", seen[hexgrid.Coord{Col: 0, Row: 0}])
	}

	res := f.HandleClick(hexgrid.Coord{Col: 3, Row: 3}, ButtonPrimary)
	for _, c := range res.Revealed {
		a, ok := seen[c]
		if !ok || a.Visual != VisualOpen {
			t.Errorf("Observer missed reveal of %v: %+v", c, a)
		}
	}
	if a := seen[hexgrid.Coord{Col: 1, Row: 1}]; a.Number != 1 {
		t.Errorf("Border cell should appear as 1, got %d", a.Number)
	}
}
