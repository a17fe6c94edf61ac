package model

import (
	"testing"

	"github.com/pkg/errors"
)

// boardFrom builds a board from rows of 'O' (alive) and '.' (dead)
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for y, row := range rows {
		for x, ch := range row {
			b.Set(x, y, ch == boardAlive)
		}
	}
	return b
}

func TestNewBoardRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewBoard(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestNewBoardStartsDead(t *testing.T) {
	b, err := NewBoard(7, 4)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.GetWidth() != 7 || b.GetHeight() != 4 {
		t.Fatalf("size = %dx%d, want 7x4", b.GetWidth(), b.GetHeight())
	}
	if n := b.CountLivingCells(); n != 0 {
		t.Fatalf("living cells = %d, want 0", n)
	}
}

func TestWrapAround(t *testing.T) {
	b := boardFrom(t,
		"O...",
		"..O.",
		"....",
	)
	w, h := b.GetWidth(), b.GetHeight()
	for y := -2 * h; y < 2*h; y++ {
		for x := -2 * w; x < 2*w; x++ {
			got := b.Get(x, y)
			if got != b.Get(x+w, y) || got != b.Get(x, y+h) {
				t.Fatalf("Get(%d, %d) differs from its wrapped counterparts", x, y)
			}
		}
	}

	if !b.Get(-4, -3) {
		t.Fatalf("Get(-4, -3) should wrap to (0, 0)")
	}
	if !b.Get(6, 4) {
		t.Fatalf("Get(6, 4) should wrap to (2, 1)")
	}
}

func TestSetWrapsAndTouchesOneCell(t *testing.T) {
	b, _ := NewBoard(5, 5)
	b.Set(-1, 7, true)
	if !b.Get(4, 2) {
		t.Fatalf("Set(-1, 7) should land on (4, 2)")
	}
	if n := b.CountLivingCells(); n != 1 {
		t.Fatalf("living cells = %d, want 1", n)
	}
	b.Set(9, -3, false)
	if n := b.CountLivingCells(); n != 0 {
		t.Fatalf("living cells = %d after clearing, want 0", n)
	}
}

func TestCountAliveNeighbors(t *testing.T) {
	b := boardFrom(t,
		"O...O",
		".....",
		"..O..",
		".....",
		"O...O",
	)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{name: "corner sees the other three corners", x: 0, y: 0, want: 3},
		{name: "negative coordinates wrap", x: -5, y: -5, want: 3},
		{name: "center is isolated", x: 2, y: 2, want: 0},
		{name: "next to center", x: 1, y: 1, want: 2},
		{name: "edge between corners", x: 0, y: 2, want: 0},
		{name: "wrapped edge", x: 4, y: 0, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CountAliveNeighbors(tt.x, tt.y); got != tt.want {
				t.Fatalf("CountAliveNeighbors(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCountAliveNeighborsBounds(t *testing.T) {
	full := boardFrom(t,
		"OOOO",
		"OOOO",
		"OOOO",
	)
	empty, _ := NewBoard(4, 3)
	for y := -5; y < 8; y++ {
		for x := -5; x < 9; x++ {
			if n := full.CountAliveNeighbors(x, y); n != 8 {
				t.Fatalf("full board neighbors at (%d, %d) = %d, want 8", x, y, n)
			}
			if n := empty.CountAliveNeighbors(x, y); n != 0 {
				t.Fatalf("empty board neighbors at (%d, %d) = %d, want 0", x, y, n)
			}
		}
	}

	// a 1x1 torus counts its only cell once per offset
	tiny := boardFrom(t, "O")
	if n := tiny.CountAliveNeighbors(0, 0); n != 8 {
		t.Fatalf("1x1 neighbors = %d, want 8", n)
	}
}

func TestEqualCloneCopyFrom(t *testing.T) {
	a := boardFrom(t,
		".O.",
		"..O",
		"OOO",
	)
	c := a.Clone()
	if !a.Equal(c) {
		t.Fatalf("clone should equal original")
	}
	c.Set(0, 0, true)
	if a.Get(0, 0) {
		t.Fatalf("mutating the clone changed the original")
	}
	if a.Equal(c) {
		t.Fatalf("boards differ but Equal returned true")
	}

	if err := c.CopyFrom(a); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if !a.Equal(c) {
		t.Fatalf("CopyFrom did not copy every cell")
	}

	other, _ := NewBoard(4, 3)
	if err := other.CopyFrom(a); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("CopyFrom across sizes err = %v, want ErrDimensionMismatch", err)
	}
	if a.Equal(other) || a.Equal(nil) {
		t.Fatalf("boards of different sizes must not be equal")
	}
}

func TestCellsAndString(t *testing.T) {
	b := boardFrom(t,
		".O.",
		"O..",
	)

	var got [][2]int
	b.Cells(func(x, y int) { got = append(got, [2]int{x, y}) })
	want := [][2]int{{1, 0}, {0, 1}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Cells visited %v, want %v", got, want)
	}

	if s := b.String(); s != ".O.\nO..\n" {
		t.Fatalf("String() = %q", s)
	}

	b.Clear()
	if b.CountLivingCells() != 0 {
		t.Fatalf("Clear left living cells")
	}
}
