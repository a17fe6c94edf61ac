package model

import "testing"

func TestBoardPoolReturnsClearedBoards(t *testing.T) {
	pool := NewBoardPool()

	b := pool.Get(4, 4)
	b.Set(1, 1, true)
	pool.Put(b)

	for range 3 {
		got := pool.Get(3, 5)
		if got.GetWidth() != 3 || got.GetHeight() != 5 {
			t.Fatalf("pool board size = %dx%d, want 3x5", got.GetWidth(), got.GetHeight())
		}
		if n := got.CountLivingCells(); n != 0 {
			t.Fatalf("pool board has %d living cells, want 0", n)
		}
		got.Set(2, 4, true)
		BoardToPool(got, pool)
	}

	// a nil pool is a no-op
	BoardToPool(b, nil)
}
