package clicker

import (
	"testing"

	"github.com/elizafairlady/go-libui/ui/view"

	"github.com/elizafairlady/go-clicker/approx"
)

func TestPoolStartsEmpty(t *testing.T) {
	s := view.NewMemState()
	p := NewPool("gold")
	if got := p.Value(s); !got.IsZero() {
		t.Errorf("fresh pool = %v, want 0", got)
	}
}

func TestPoolAdd(t *testing.T) {
	s := view.NewMemState()
	p := NewPool("gold")
	got := p.Add(s, approx.FromInt64(5))
	if v, _ := got.Int64(); v != 5 {
		t.Errorf("after add 5: %d", v)
	}
	got = p.Add(s, approx.FromInt64(3))
	if v, _ := got.Int64(); v != 8 {
		t.Errorf("after add 3: %d", v)
	}
}

func TestPoolFetchAdd(t *testing.T) {
	s := view.NewMemState()
	p := NewPool("gold")
	p.Set(s, approx.FromInt64(10))

	prev := p.FetchAdd(s, approx.FromInt64(7))
	if v, _ := prev.Int64(); v != 10 {
		t.Errorf("FetchAdd returned %d, want prior value 10", v)
	}
	if v, _ := p.Value(s).Int64(); v != 17 {
		t.Errorf("pool = %d, want 17", v)
	}
}

func TestPoolNeverNegative(t *testing.T) {
	s := view.NewMemState()
	p := NewPool("gold")
	p.Set(s, approx.FromInt64(5))
	p.Add(s, approx.FromInt64(-10))
	if got := p.Value(s); !got.IsZero() {
		t.Errorf("pool = %v, want clamp to 0", got)
	}
	p.Set(s, approx.FromInt64(-1))
	if got := p.Value(s); !got.IsZero() {
		t.Errorf("Set(-1) stored %v, want 0", got)
	}
}

func TestPoolSpend(t *testing.T) {
	s := view.NewMemState()
	p := NewPool("gold")
	p.Set(s, approx.FromInt64(10))

	if !p.CanAfford(s, approx.FromInt64(10)) {
		t.Error("cannot afford exact balance")
	}
	if !p.Spend(s, approx.FromInt64(4)) {
		t.Fatal("Spend(4) failed")
	}
	if v, _ := p.Value(s).Int64(); v != 6 {
		t.Errorf("pool = %d, want 6", v)
	}
	if p.Spend(s, approx.FromInt64(7)) {
		t.Error("Spend(7) succeeded with 6 in pool")
	}
	if v, _ := p.Value(s).Int64(); v != 6 {
		t.Errorf("failed spend changed pool to %d", v)
	}
}

func TestPoolIgnoresGarbageState(t *testing.T) {
	s := view.NewMemState()
	s.Set("gold", "not a number")
	p := NewPool("gold")
	if got := p.Value(s); !got.IsZero() {
		t.Errorf("garbage state read as %v, want 0", got)
	}
}
