package clicker

import (
	"github.com/elizafairlady/go-libui/ui/view"

	"github.com/elizafairlady/go-clicker/approx"
)

// Pool is a named resource counter stored in UI state under Path.
//
// Pools never go negative. All mutation happens from the event loop
// (action handlers and the tick), so reads and writes need no locking
// beyond what the state store already provides.
type Pool struct {
	Path string
}

// NewPool returns a pool stored at the given state path.
func NewPool(path string) Pool {
	return Pool{Path: path}
}

// Value returns the current amount. An unset or unparseable entry
// reads as zero.
func (p Pool) Value(s view.State) approx.Int {
	v, err := approx.Parse(s.Get(p.Path))
	if err != nil {
		return approx.Zero()
	}
	return v
}

// Set stores v, clamped at zero.
func (p Pool) Set(s view.State, v approx.Int) {
	if v.Sign() < 0 {
		v = approx.Zero()
	}
	s.Set(p.Path, v.String())
}

// Add adds delta and returns the new amount.
func (p Pool) Add(s view.State, delta approx.Int) approx.Int {
	v := p.Value(s).Add(delta)
	p.Set(s, v)
	return p.Value(s)
}

// FetchAdd adds delta and returns the amount stored before the add.
// This is the tick primitive: each generator tier adds to the tier
// below while the cascade reads the pre-tick totals.
func (p Pool) FetchAdd(s view.State, delta approx.Int) approx.Int {
	prev := p.Value(s)
	p.Set(s, prev.Add(delta))
	return prev
}

// CanAfford reports whether the pool holds at least cost.
func (p Pool) CanAfford(s view.State, cost approx.Int) bool {
	return p.Value(s).Cmp(cost) >= 0
}

// Spend deducts cost if the pool can afford it and reports whether
// it did.
func (p Pool) Spend(s view.State, cost approx.Int) bool {
	v := p.Value(s)
	if v.Cmp(cost) < 0 {
		return false
	}
	p.Set(s, v.Sub(cost))
	return true
}
