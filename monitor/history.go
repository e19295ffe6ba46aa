package monitor

import (
	"github.com/tourguard-inc/tourguard-api/schema"
)

// historyCapacity bounds the per-tourist in-memory location history
const historyCapacity = 100

// positionRing - fixed-capacity ring buffer of positions, oldest evicted on
// overflow
type positionRing struct {
	buf  []schema.Position
	next int
	full bool
}

func newPositionRing(capacity int) *positionRing {
	return &positionRing{
		buf: make([]schema.Position, capacity),
	}
}

func (r *positionRing) push(pos schema.Position) {
	r.buf[r.next] = pos
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
}

func (r *positionRing) len() int {
	if r.full {
		return len(r.buf)
	}
	return r.next
}

// snapshot returns the retained positions, oldest first
func (r *positionRing) snapshot() []schema.Position {
	out := make([]schema.Position, 0, r.len())
	if r.full {
		out = append(out, r.buf[r.next:]...)
	}
	out = append(out, r.buf[:r.next]...)
	return out
}
