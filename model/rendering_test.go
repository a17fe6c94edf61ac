package model

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimulationRenderer(t *testing.T, w, h int) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r, err := NewTerminalRenderer(screen)
	if err != nil {
		t.Fatalf("NewTerminalRenderer: %v", err)
	}
	t.Cleanup(r.Close)
	screen.SetSize(w, h)
	return r, screen
}

func TestTerminalRendererDisplay(t *testing.T) {
	r, screen := newSimulationRenderer(t, 20, 5)
	b := boardFrom(t,
		"O..",
		".O.",
	)

	r.Display(b, "Gen: 0")

	cells, width, _ := screen.GetContents()
	runeAt := func(x, y int) rune {
		c := cells[y*width+x]
		if len(c.Runes) == 0 {
			return 0
		}
		return c.Runes[0]
	}

	for i, want := range "Gen: 0" {
		if got := runeAt(i, 0); got != want {
			t.Fatalf("status rune %d = %q, want %q", i, got, want)
		}
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 1, gridPosBlock}, {1, 1, gridPosBlock},
		{2, 1, gridPosEmpty}, {3, 1, gridPosEmpty},
		{2, 2, gridPosBlock}, {3, 2, gridPosBlock},
		{4, 2, gridPosEmpty},
	}
	for _, tt := range tests {
		if got := runeAt(tt.x, tt.y); got != tt.want {
			t.Fatalf("rune at (%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

// rowText returns row y of the screen with trailing blanks trimmed
func rowText(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	row := make([]rune, 0, width)
	for _, c := range cells[y*width : (y+1)*width] {
		if len(c.Runes) == 0 {
			row = append(row, ' ')
			continue
		}
		row = append(row, c.Runes[0])
	}
	return strings.TrimRight(string(row), " ")
}

func TestTerminalRendererShorterStatusReplacesLonger(t *testing.T) {
	r, screen := newSimulationRenderer(t, 40, 5)
	b := boardFrom(t, "O..")

	r.Display(b, "Gen: 10 | Living: 120 | running")
	r.Display(b, "Gen: 11 | Living: 9 | paused")

	if got := rowText(screen, 0); got != "Gen: 11 | Living: 9 | paused" {
		t.Fatalf("status row = %q", got)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	r, screen := newSimulationRenderer(t, 20, 5)
	r.Display(boardFrom(t, "OOO"), "Gen: 3")

	r.Clear()
	for y := range 5 {
		if got := rowText(screen, y); got != "" {
			t.Fatalf("row %d = %q after Clear, want blank", y, got)
		}
	}
	if r.Screen() != tcell.Screen(screen) {
		t.Fatalf("Screen() should expose the wrapped screen")
	}
}
