// Package patterns holds the named starting configurations and the helpers
// that place them on a board.
package patterns

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Random is the pseudo-pattern name that fills the board randomly
const Random = "random"

// ErrUnknownPattern is returned when a pattern name is not in the table
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a fixed set of living cells given as (x, y) coordinates
type Pattern struct {
	Name        string
	Description string
	Cells       [][2]int
}

// Apply sets the pattern's cells alive on b, offset by (dx, dy).
// Coordinates wrap, so large patterns fold around small boards.
func (p Pattern) Apply(b *model.Board, dx, dy int) {
	for _, c := range p.Cells {
		b.Set(c[0]+dx, c[1]+dy, true)
	}
}

var table = map[string]Pattern{
	"gosper": {
		Name:        "gosper",
		Description: "Gosper Glider Gun (plus an Eater)",
		Cells: [][2]int{
			// left block
			{1, 5}, {2, 5}, {1, 6}, {2, 6},
			// right block
			{35, 3}, {35, 4}, {36, 3}, {36, 4},
			{13, 3}, {12, 4}, {11, 5}, {11, 6}, {11, 7}, {12, 8}, {13, 9},
			{14, 3}, {16, 4}, {17, 5}, {17, 6}, {17, 7}, {16, 8}, {14, 9},
			{15, 6}, {18, 6},
			{25, 1}, {25, 2}, {23, 2}, {23, 6}, {25, 6}, {25, 7},
			{21, 3}, {22, 3}, {21, 4}, {22, 4}, {21, 5}, {22, 5},
			// eater
			{5, 52}, {6, 52}, {5, 53},
			{6, 54}, {7, 54}, {8, 54}, {8, 55},
		},
	},
	"acorn": {
		Name:        "acorn",
		Description: "acorn",
		Cells: [][2]int{
			{22, 21}, {22, 23}, {21, 23}, {24, 22}, {25, 23}, {26, 23}, {27, 23},
		},
	},
	"switch-engine": {
		Name:        "switch-engine",
		Description: "block-laying switch engine",
		Cells: [][2]int{
			{21, 26}, {23, 26}, {23, 25}, {25, 24}, {25, 23},
			{25, 22}, {27, 23}, {27, 22}, {27, 21}, {28, 22},
		},
	},
	"line": {
		Name:        "line",
		Description: "line",
		Cells:       line(15, 45, 30),
	},
	"lidka": {
		Name:        "lidka",
		Description: "Lidka - a Methuselah",
		Cells: [][2]int{
			{22, 23}, {23, 22}, {24, 23}, {23, 24},
			{30, 32}, {30, 33}, {30, 34},
			{26, 36}, {27, 36}, {28, 36},
			{28, 33}, {28, 34}, {27, 34},
		},
	},
	"block": {
		Name:        "block",
		Description: "block (still life)",
		Cells:       [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	"blinker": {
		Name:        "blinker",
		Description: "blinker (period 2)",
		Cells:       [][2]int{{0, 0}, {1, 0}, {2, 0}},
	},
	"glider": {
		Name:        "glider",
		Description: "glider",
		Cells:       [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
}

// line returns a horizontal run of cells from x0 to x1 inclusive on row y
func line(x0, x1, y int) [][2]int {
	cells := make([][2]int, 0, x1-x0+1)
	for x := x0; x <= x1; x++ {
		cells = append(cells, [2]int{x, y})
	}
	return cells
}

// choices weights the random pick: the glider gun four times, each other
// named pattern once, and a random board for the remaining buckets.
var choices = [...]string{
	"gosper", "gosper", "gosper", "gosper",
	"acorn", "switch-engine", "line", "lidka",
	Random, Random, Random,
}

// Names returns every pattern name in sorted order
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the pattern registered under name
func Lookup(name string) (Pattern, error) {
	p, ok := table[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	return p, nil
}

// Choose picks a pattern name using the built-in weighting
func Choose(rng *rand.Rand) string {
	return choices[rng.IntN(len(choices))]
}

// Randomize sets every cell alive with the given probability
func Randomize(b *model.Board, rng *rand.Rand, density float64) {
	for y := range b.GetHeight() {
		for x := range b.GetWidth() {
			b.Set(x, y, rng.Float64() < density)
		}
	}
}

// Seed clears b and places the named pattern on it. An empty name picks one with Choose.
// It returns the description to show alongside the board.
func Seed(b *model.Board, name string, rng *rand.Rand, density float64) (string, error) {
	if name == "" {
		name = Choose(rng)
	}
	if name == Random {
		Randomize(b, rng, density)
		return Random, nil
	}

	p, err := Lookup(name)
	if err != nil {
		return "", errors.Wrap(err, "[Seed] failed to find pattern")
	}
	b.Clear()
	p.Apply(b, 0, 0)
	return p.Description, nil
}

// NewRNG creates a deterministic generator for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
