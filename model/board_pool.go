package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles board snapshots
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves an all-dead board of the given dimensions from the pool
func (p *BoardPool) Get(width, height int) *Board {
	b := p.pool.Get().(*Board)
	b.Reset(width, height)
	return b
}

// Put returns a board to the pool
func (p *BoardPool) Put(b *Board) {
	p.pool.Put(b)
}
