package model

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrNotInitialized is returned when stepping an engine that has no boards
var ErrNotInitialized = errors.New("engine is not initialized")

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithWorkers splits every generation into n bands of rows computed concurrently.
// Values below 1 are treated as 1.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		e.workers = max(1, n)
	}
}

// Engine owns a pair of boards and advances them one generation at a time.
// The board at index generation%2 is current, the other one is next.
type Engine struct {
	mu         sync.RWMutex
	boards     [2]*Board
	generation uint64
	workers    int
}

// NewEngine creates an engine with two all-dead boards at generation 0
func NewEngine(width, height int, opts ...EngineOption) (*Engine, error) {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.Initialize(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewEngine] failed to initialize")
	}
	return e, nil
}

// Initialize (re)allocates both boards with the given dimensions and resets the generation counter
func (e *Engine) Initialize(width, height int) error {
	a, err := NewBoard(width, height)
	if err != nil {
		return errors.Wrap(err, "[Initialize] failed to allocate board")
	}
	b, _ := NewBoard(width, height)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.boards = [2]*Board{a, b}
	e.generation = 0
	return nil
}

// Generation returns the number of completed steps
func (e *Engine) Generation() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.generation
}

// CurrentBoard returns the board holding the latest generation. Callers must not
// mutate it while a Step is running.
func (e *Engine) CurrentBoard() *Board {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.boards[e.generation%2]
}

// NextBoard returns the board the next Step will overwrite
func (e *Engine) NextBoard() *Board {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.boards[(e.generation+1)%2]
}

// Seed runs fn against the current board while holding the engine lock
func (e *Engine) Seed(fn func(b *Board)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.boards[0] == nil {
		return errors.Wrap(ErrNotInitialized, "[Seed]")
	}
	fn(e.boards[e.generation%2])
	return nil
}

// View runs fn against the current board while no Step can run
func (e *Engine) View(fn func(b *Board)) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.boards[0] == nil {
		return errors.Wrap(ErrNotInitialized, "[View]")
	}
	fn(e.boards[e.generation%2])
	return nil
}

// Snapshot copies the current board into dst
func (e *Engine) Snapshot(dst *Board) error {
	var err error
	if viewErr := e.View(func(b *Board) { err = dst.CopyFrom(b) }); viewErr != nil {
		return errors.Wrap(viewErr, "[Snapshot]")
	}
	return errors.Wrap(err, "[Snapshot]")
}

// Step computes the next generation from the current board and swaps the roles
// of the two boards. Every cell of the next board is written, so nothing from
// two generations ago survives.
func (e *Engine) Step() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.boards[0] == nil {
		return errors.Wrap(ErrNotInitialized, "[Step]")
	}

	var (
		cur  = e.boards[e.generation%2]
		next = e.boards[(e.generation+1)%2]
	)

	if e.workers <= 1 {
		stepRows(cur, next, 0, cur.height)
	} else {
		var (
			eg            errgroup.Group
			rowsPerWorker = (cur.height + e.workers - 1) / e.workers // Ceiling division
		)
		for i := range e.workers {
			var (
				startRow = i * rowsPerWorker
				endRow   = min(startRow+rowsPerWorker, cur.height)
			)
			if startRow >= cur.height {
				break
			}

			eg.Go(func() error {
				stepRows(cur, next, startRow, endRow)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return errors.Wrap(err, "[Step] failed computing generation")
		}
	}

	e.generation++
	return nil
}

// stepRows applies the transition rule to rows [startRow, endRow), reading cur and writing next
func stepRows(cur, next *Board, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range cur.width {
			next.cells[y*next.width+x] = rules.ApplyConwayRules(
				cur.CountAliveNeighbors(x, y),
				cur.cells[y*cur.width+x],
			)
		}
	}
}
