// Package tips rotates the catalog's tip lines.
package tips

import (
	"math/rand/v2"
	"sync"
)

// Rotator picks tips at random without showing the same tip twice in a row.
type Rotator struct {
	mu      sync.Mutex
	tips    []string
	rng     *rand.Rand
	current int
}

// New returns a rotator over tips. rng may be nil, in which case a
// time-seeded source is used. The first tip is chosen at random.
func New(tips []string, rng *rand.Rand) *Rotator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r := &Rotator{tips: append([]string(nil), tips...), rng: rng, current: -1}
	if len(r.tips) > 0 {
		r.current = r.rng.IntN(len(r.tips))
	}
	return r
}

// Len is the number of tips.
func (r *Rotator) Len() int {
	return len(r.tips)
}

// Current returns the tip on display, or "" when there are none.
func (r *Rotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current < 0 {
		return ""
	}
	return r.tips[r.current]
}

// Next advances to a different tip and returns it.
func (r *Rotator) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch n := len(r.tips); n {
	case 0:
		return ""
	case 1:
		r.current = 0
	default:
		// Draw from n-1 slots and skip over the current one.
		i := r.rng.IntN(n - 1)
		if i >= r.current {
			i++
		}
		r.current = i
	}
	return r.tips[r.current]
}
