// Package latest guards shared state refreshed by overlapping fetches:
// a response is only accepted if no newer fetch has started since it
// was issued, so a slow early reply can never clobber a later one.
package latest

import "sync/atomic"

// Guard hands out monotonically increasing generations.
type Guard struct {
	issued   atomic.Uint64
	accepted atomic.Uint64
}

// Begin marks the start of a fetch and returns its generation.
func (g *Guard) Begin() uint64 {
	return g.issued.Add(1)
}

// Accept reports whether a fetch begun at gen is still the newest one,
// and records it as the latest applied result when it is.
func (g *Guard) Accept(gen uint64) bool {
	if gen != g.issued.Load() {
		return false
	}
	for {
		cur := g.accepted.Load()
		if gen <= cur {
			return false
		}
		if g.accepted.CompareAndSwap(cur, gen) {
			return true
		}
	}
}
