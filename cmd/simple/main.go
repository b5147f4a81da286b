// Simple is a basic example of how a clicker game can be started.
//
// It wires a four-tier cascade: every 100ms each T4 generates a T3,
// each T3 a T2, each T2 a T1, and each T1 one unit of the main
// resource. The Manual button adds one resource per click, and the
// Scientific checkbox switches the display between english words and
// scientific notation. Every tier gets 25% more expensive with each
// purchase.
//
// Usage: simple
// Quit with DEL key.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/elizafairlady/go-libui/ui/proto"
	"github.com/elizafairlady/go-libui/ui/view"

	clicker "github.com/elizafairlady/go-clicker"
	"github.com/elizafairlady/go-clicker/approx"
)

// tickInterval is how often resources generate automatically.
const tickInterval = 100 * time.Millisecond

type simpleApp struct {
	game *clicker.Game
}

func newSimpleApp() *simpleApp {
	resource := clicker.NewPool("resource")

	// Each purchase makes the next one 25% more expensive.
	quarterMore := func(_, cost approx.Int) (approx.Int, bool) {
		return cost.Scale(1.25), true
	}

	return &simpleApp{game: &clicker.Game{
		Resource: resource,
		// Four tiers with progressively more expensive base costs.
		Upgrades: []*clicker.Upgrade{
			clicker.NewUpgrade("t1", 10, resource).WithCostFunc(quarterMore),
			clicker.NewUpgrade("t2", 100, resource).WithCostFunc(quarterMore),
			clicker.NewUpgrade("t3", 1000, resource).WithCostFunc(quarterMore),
			clicker.NewUpgrade("t4", 10000, resource).WithCostFunc(quarterMore),
		},
		// Storage for the generated quantity of the first three
		// tiers. The last tier is never generated, only bought.
		Totals: []clicker.Pool{
			clicker.NewPool("totals/t1"),
			clicker.NewPool("totals/t2"),
			clicker.NewPool("totals/t3"),
		},
	}}
}

func (a *simpleApp) View(s view.State) *view.Node {
	total := a.game.Resource.Value(s)
	display := total.English()
	if s.Get("scientific") == "1" {
		display = total.Scientific()
	}

	return view.VBox("root",
		view.TextNode("resource", display).Prop("bg", "paleblue").PropInt("pad", 8),
		view.Checkbox("scientific", "Scientific", s.Get("scientific") == "1").
			Prop("bind", "scientific"),
		clicker.ManualButton("Manual"),
		a.tierButton(s, 0, "T1"),
		a.tierButton(s, 1, "T2"),
		a.tierButton(s, 2, "T3"),
		a.topButton(s, "T4"),
		view.Spacer("sp"),
		view.TextNode("help", "Tab to navigate, Enter to click, DEL to quit").
			Prop("fg", "greyblue").PropInt("pad", 4),
	).PropInt("pad", 4).PropInt("gap", 2)
}

// tierButton builds the purchase button for a generated tier. The
// caption shows the purchased level, and the generated quantity too
// once the two diverge.
func (a *simpleApp) tierButton(s view.State, i int, label string) *view.Node {
	u := a.game.Upgrades[i]
	level := u.Level.Value(s)
	total := a.game.Totals[i].Value(s)
	cost, _ := u.Cost(s)

	caption := fmt.Sprintf("Buy %s for %s (%s)", label, cost.English(), level.English())
	if total.Cmp(level) != 0 {
		caption = fmt.Sprintf("Buy %s for %s (%s : %s)",
			label, cost.English(), level.English(), total.English())
	}
	return u.Button(s, caption)
}

// topButton builds the button for the last tier in the line, which
// has no generated quantity.
func (a *simpleApp) topButton(s view.State, label string) *view.Node {
	u := a.game.Upgrades[len(a.game.Upgrades)-1]
	cost, _ := u.Cost(s)
	caption := fmt.Sprintf("Buy %s for %s (%s)",
		label, cost.English(), u.Level.Value(s).English())
	return u.Button(s, caption)
}

func (a *simpleApp) Handle(s view.State, act *proto.Action) {
	a.game.Handle(s, act)
}

func (a *simpleApp) TickInterval() time.Duration { return tickInterval }

func (a *simpleApp) Tick(s view.State) { a.game.Tick(s) }

func main() {
	if err := clicker.Run("Clicker", newSimpleApp()); err != nil {
		log.Fatal(err)
	}
}
