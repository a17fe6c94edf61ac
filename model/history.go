package model

// History keeps exact copies of the last few generations so a driver can tell
// when the board has settled into a still life or a short cycle.
type History struct {
	pool  *BoardPool
	ring  []*Board
	next  int
	count int
}

// NewHistory creates a history holding up to depth generations
func NewHistory(depth int, pool *BoardPool) *History {
	if pool == nil {
		pool = NewBoardPool()
	}
	return &History{
		pool: pool,
		ring: make([]*Board, max(1, depth)),
	}
}

// Record stores a copy of b as the most recent generation, evicting the oldest one
func (h *History) Record(b *Board) {
	snap := h.pool.Get(b.width, b.height)
	copy(snap.cells, b.cells)

	BoardToPool(h.ring[h.next], h.pool)
	h.ring[h.next] = snap
	h.next = (h.next + 1) % len(h.ring)
	h.count = min(h.count+1, len(h.ring))
}

// Period returns k when b is identical to the generation recorded k records ago
// (1 for a still life, 2 for a blinker), checking the most recent first.
func (h *History) Period(b *Board) (int, bool) {
	for k := 1; k <= h.count; k++ {
		idx := ((h.next-k)%len(h.ring) + len(h.ring)) % len(h.ring)
		if h.ring[idx].Equal(b) {
			return k, true
		}
	}
	return 0, false
}

// Reset drops every recorded generation
func (h *History) Reset() {
	for i, b := range h.ring {
		BoardToPool(b, h.pool)
		h.ring[i] = nil
	}
	h.next = 0
	h.count = 0
}
