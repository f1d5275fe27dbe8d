package domain

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now += d }

// seqRand returns vals in order, then fallback forever.
type seqRand struct {
	vals     []int
	fallback int
}

func (r *seqRand) IntN(n int) int {
	v := r.fallback
	if len(r.vals) > 0 {
		v = r.vals[0]
		r.vals = r.vals[1:]
	}
	return v % n
}

const (
	idxI = 0
	idxO = 1
	idxT = 2
)

// newTestSession starts a default-sized session whose pieces are all O.
func newTestSession(t testing.TB) (*Session, *fakeClock, *seqRand) {
	t.Helper()
	clock := &fakeClock{}
	rng := &seqRand{fallback: idxO}
	return NewSession(DefaultRules(), clock, rng, zerolog.Nop()), clock, rng
}

func fillRow(g *Grid, y int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < g.Width(); x++ {
		if !skip[x] {
			g.Set(x, y, Filled)
		}
	}
}

func emptyRows(w, h int) [][]Cell {
	return NewGrid(w, h).Rows()
}
