package clicker

import (
	"github.com/elizafairlady/go-libui/ui/view"

	"github.com/elizafairlady/go-clicker/approx"
)

// CostFunc computes the cost of the next level after a purchase.
// It receives the new level and the cost just paid. Returning
// ok == false permanently disables further purchases.
type CostFunc func(level, cost approx.Int) (next approx.Int, ok bool)

// exhausted marks an upgrade whose cost function ended the line.
// Stored in the cost slot so the state survives view rebuilds.
const exhausted = "-"

// Upgrade is a purchasable generator tier. Its level counts how many
// times it has been bought; each purchase deducts the current cost
// from the source pool and advances the cost via the cost function.
type Upgrade struct {
	// ID names the upgrade in state paths and button actions.
	ID string
	// Level counts completed purchases.
	Level Pool

	source Pool
	base   approx.Int
	costFn CostFunc
}

// NewUpgrade returns an upgrade bought from source for baseCost.
func NewUpgrade(id string, baseCost int64, source Pool) *Upgrade {
	return &Upgrade{
		ID:     id,
		Level:  NewPool("upgrades/" + id + "/level"),
		source: source,
		base:   approx.FromInt64(baseCost),
	}
}

// WithCostFunc sets the cost progression and returns u.
func (u *Upgrade) WithCostFunc(fn CostFunc) *Upgrade {
	u.costFn = fn
	return u
}

// Source returns the pool this upgrade purchases from.
func (u *Upgrade) Source() Pool { return u.source }

func (u *Upgrade) costPath() string {
	return "upgrades/" + u.ID + "/cost"
}

// Cost returns the current purchase cost. ok is false once the cost
// function has ended the upgrade line.
func (u *Upgrade) Cost(s view.State) (cost approx.Int, ok bool) {
	raw := s.Get(u.costPath())
	if raw == exhausted {
		return approx.Zero(), false
	}
	if raw == "" {
		return u.base, true
	}
	c, err := approx.Parse(raw)
	if err != nil {
		return u.base, true
	}
	return c, true
}

// Affordable reports whether the upgrade can be bought right now.
func (u *Upgrade) Affordable(s view.State) bool {
	cost, ok := u.Cost(s)
	return ok && u.source.CanAfford(s, cost)
}

// Buy purchases one level: deduct the cost, bump the level, advance
// the cost. A purchase that cannot be paid for is a no-op, so Buy is
// safe to call straight from a click handler.
func (u *Upgrade) Buy(s view.State) bool {
	cost, ok := u.Cost(s)
	if !ok || !u.source.Spend(s, cost) {
		return false
	}
	level := u.Level.Add(s, approx.One())
	if u.costFn != nil {
		next, ok := u.costFn(level, cost)
		if !ok {
			s.Set(u.costPath(), exhausted)
		} else {
			s.Set(u.costPath(), next.String())
		}
	}
	return true
}

// Button builds the purchase button node for this upgrade. The click
// action is "buy/<id>", which Game.Handle dispatches back to Buy.
// Unaffordable upgrades are dimmed; Buy stays the authority either way.
func (u *Upgrade) Button(s view.State, caption string) *view.Node {
	n := view.Button("buy-"+u.ID, caption).Prop("on", "buy/"+u.ID)
	if !u.Affordable(s) {
		n.Prop("fg", "acmedim")
	}
	return n
}
