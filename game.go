package clicker

import (
	"strings"

	"github.com/elizafairlady/go-libui/ui/view"

	"github.com/elizafairlady/go-clicker/approx"
)

// Game ties a resource pool to a cascade of generator tiers.
//
// Upgrades[0] is the lowest tier; each higher tier generates units of
// the tier below it on every tick, and lowest-tier units feed the
// resource pool. Totals[i] accumulates the units of tier i produced
// by tier i+1, so len(Totals) is len(Upgrades)-1: the top tier only
// ever has its purchased level.
type Game struct {
	Resource Pool
	Upgrades []*Upgrade
	Totals   []Pool
}

// Tick runs one generation step.
//
// The count of active generators at tier i is its purchased level
// plus its pre-tick generated total; that count is added to the
// total of the tier below, and the lowest tier's count is added to
// the resource.
func (g *Game) Tick(s view.State) {
	top := len(g.Upgrades) - 1
	if top < 0 {
		return
	}
	count := g.Upgrades[top].Level.Value(s)
	for i := top - 1; i >= 0; i-- {
		prev := g.Totals[i].FetchAdd(s, count)
		count = g.Upgrades[i].Level.Value(s).Add(prev)
	}
	g.Resource.Add(s, count)
}

// Click adds one unit to the resource, the manual action of the game.
func (g *Game) Click(s view.State) {
	g.Resource.Add(s, approx.One())
}

// Handle dispatches click actions for the game's own buttons:
// "manual" adds one resource, "buy/<id>" purchases an upgrade.
// It reports whether it consumed the action, so apps can layer
// their own handling around it.
func (g *Game) Handle(s view.State, act *view.Action) bool {
	if act.Kind != "click" {
		return false
	}
	on := act.KVs["action"]
	switch {
	case on == "manual":
		g.Click(s)
		return true
	case strings.HasPrefix(on, "buy/"):
		id := strings.TrimPrefix(on, "buy/")
		for _, u := range g.Upgrades {
			if u.ID == id {
				u.Buy(s)
				return true
			}
		}
	}
	return false
}

// ManualButton builds the button that triggers Click.
func ManualButton(label string) *view.Node {
	return view.Button("manual", label).Prop("on", "manual")
}
