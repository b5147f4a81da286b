package clicker

import (
	"testing"

	"github.com/elizafairlady/go-libui/ui/view"

	"github.com/elizafairlady/go-clicker/approx"
)

func quarterMore(_, cost approx.Int) (approx.Int, bool) {
	return cost.Scale(1.25), true
}

func TestUpgradeBuy(t *testing.T) {
	s := view.NewMemState()
	gold := NewPool("gold")
	gold.Set(s, approx.FromInt64(500))
	u := NewUpgrade("gen", 100, gold).WithCostFunc(quarterMore)

	if !u.Buy(s) {
		t.Fatal("Buy failed with 500 gold")
	}
	if v, _ := gold.Value(s).Int64(); v != 400 {
		t.Errorf("gold = %d, want 400", v)
	}
	if v, _ := u.Level.Value(s).Int64(); v != 1 {
		t.Errorf("level = %d, want 1", v)
	}
	cost, ok := u.Cost(s)
	if v, _ := cost.Int64(); !ok || v != 125 {
		t.Errorf("next cost = %d, %v, want 125", v, ok)
	}
}

func TestUpgradeUnaffordable(t *testing.T) {
	s := view.NewMemState()
	gold := NewPool("gold")
	gold.Set(s, approx.FromInt64(99))
	u := NewUpgrade("gen", 100, gold).WithCostFunc(quarterMore)

	if u.Affordable(s) {
		t.Error("affordable with 99 gold, cost 100")
	}
	if u.Buy(s) {
		t.Fatal("Buy succeeded with 99 gold")
	}
	if v, _ := gold.Value(s).Int64(); v != 99 {
		t.Errorf("failed buy changed gold to %d", v)
	}
	if !u.Level.Value(s).IsZero() {
		t.Error("failed buy changed level")
	}
}

func TestUpgradeConstantCost(t *testing.T) {
	// No cost function: the price never moves.
	s := view.NewMemState()
	gold := NewPool("gold")
	gold.Set(s, approx.FromInt64(50))
	u := NewUpgrade("gen", 10, gold)

	for i := 0; i < 3; i++ {
		if !u.Buy(s) {
			t.Fatalf("buy #%d failed", i+1)
		}
	}
	cost, ok := u.Cost(s)
	if v, _ := cost.Int64(); !ok || v != 10 {
		t.Errorf("cost = %d, %v, want constant 10", v, ok)
	}
	if v, _ := gold.Value(s).Int64(); v != 20 {
		t.Errorf("gold = %d, want 20", v)
	}
}

func TestUpgradeExhausted(t *testing.T) {
	s := view.NewMemState()
	gold := NewPool("gold")
	gold.Set(s, approx.FromInt64(1000))
	oneShot := func(_, _ approx.Int) (approx.Int, bool) {
		return approx.Zero(), false
	}
	u := NewUpgrade("gen", 100, gold).WithCostFunc(oneShot)

	if !u.Buy(s) {
		t.Fatal("first buy failed")
	}
	if _, ok := u.Cost(s); ok {
		t.Error("cost still available after line ended")
	}
	if u.Affordable(s) {
		t.Error("exhausted upgrade reported affordable")
	}
	if u.Buy(s) {
		t.Error("bought an exhausted upgrade")
	}
	if v, _ := u.Level.Value(s).Int64(); v != 1 {
		t.Errorf("level = %d, want 1", v)
	}
}

func TestUpgradeButton(t *testing.T) {
	s := view.NewMemState()
	gold := NewPool("gold")
	u := NewUpgrade("t1", 10, gold)

	n := u.Button(s, "Buy T1 for 10 (0)")
	if n.Type != "button" {
		t.Errorf("type = %q", n.Type)
	}
	if n.ID != "buy-t1" {
		t.Errorf("id = %q", n.ID)
	}
	if n.Props["on"] != "buy/t1" {
		t.Errorf("on = %q", n.Props["on"])
	}
	if n.Props["fg"] != "acmedim" {
		t.Error("unaffordable button not dimmed")
	}

	gold.Set(s, approx.FromInt64(10))
	n = u.Button(s, "Buy T1 for 10 (0)")
	if _, dimmed := n.Props["fg"]; dimmed {
		t.Error("affordable button dimmed")
	}
}
