package types

import "testing"

func TestPriceQuantityNotional(t *testing.T) {
	p := NewPrice("10")
	q := NewQuantity("5")

	n := p.Mul(q)
	if n.String() != "50" {
		t.Fatalf("expected notional 50, got %s", n.String())
	}

	if got := n.Div(p); !got.Equal(q) {
		t.Fatalf("expected quantity %s, got %s", q, got)
	}

	if got := n.DivQty(q); !got.Equal(p) {
		t.Fatalf("expected price %s, got %s", p, got)
	}
}

func TestZeroValues(t *testing.T) {
	if !ZeroPrice.IsZero() || !ZeroQuantity.IsZero() || !ZeroNotional.IsZero() {
		t.Fatal("zero values must report IsZero")
	}
}

func TestMinQuantity(t *testing.T) {
	a := NewQuantity("3")
	b := NewQuantity("7")

	if got := MinQuantity(a, b); !got.Equal(a) {
		t.Fatalf("expected %s, got %s", a, got)
	}
}
