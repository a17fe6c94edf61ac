package model

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	boardAlive = 'O'
	boardDead  = '.'
)

var (
	// ErrInvalidDimensions is returned when a board is requested with a non-positive width or height
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	// ErrDimensionMismatch is returned when two boards of different sizes are combined
	ErrDimensionMismatch = errors.New("board dimensions do not match")
)

// Board is a fixed-size grid of cells whose edges wrap around onto the opposite edge
type Board struct {
	width  int
	height int
	cells  []bool // row-major, true means alive
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] got %dx%d", width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// Reset resizes the board and kills every cell. Only the pool should call this,
// a board owned by an engine keeps its dimensions for its whole life.
func (b *Board) Reset(width, height int) {
	b.width = width
	b.height = height

	if cap(b.cells) < width*height {
		b.cells = make([]bool, width*height)
		return
	}
	b.cells = b.cells[:width*height]
	b.Clear()
}

// Clear kills all cells
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

// wrap normalizes v into [0, n)
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

func (b *Board) index(x, y int) int {
	return wrap(y, b.height)*b.width + wrap(x, b.width)
}

// Set sets a cell to alive (true) or dead (false). Any coordinate is accepted.
func (b *Board) Set(x, y int, alive bool) {
	b.cells[b.index(x, y)] = alive
}

// Get returns the state of a cell. Any coordinate is accepted.
func (b *Board) Get(x, y int) bool {
	return b.cells[b.index(x, y)]
}

// CountAliveNeighbors counts living cells among the 8 surrounding positions,
// wrapping each one individually across the board edges.
func (b *Board) CountAliveNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.Get(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, alive := range b.cells {
		if alive {
			count++
		}
	}
	return
}

// Cells calls fn with the coordinates of every living cell in row-major order
func (b *Board) Cells(fn func(x, y int)) {
	for i, alive := range b.cells {
		if alive {
			fn(i%b.width, i/b.width)
		}
	}
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// CopyFrom overwrites every cell with the cells of src
func (b *Board) CopyFrom(src *Board) error {
	if b.width != src.width || b.height != src.height {
		return errors.Wrapf(ErrDimensionMismatch, "[CopyFrom] %dx%d into %dx%d",
			src.width, src.height, b.width, b.height)
	}
	copy(b.cells, src.cells)
	return nil
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// String renders the board as rows of 'O' (alive) and '.' (dead)
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := range b.height {
		for x := range b.width {
			if b.cells[y*b.width+x] {
				sb.WriteByte(boardAlive)
			} else {
				sb.WriteByte(boardDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
