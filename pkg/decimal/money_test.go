package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func money(s string) Money {
	return Money{stddec.RequireFromString(s)}
}

func TestNewMoney(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}
	if got := NewMoney(274803.87).Float(); got != 274803.87 {
		t.Fatalf("Float got %v", got)
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"-2.345", "-2.34"},
		{"273522.949", "273522.95"},
	}
	for _, c := range cases {
		got := money(c.in).Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestWholeRoundsHalfUp(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.5", "3"},
		{"2.49", "2"},
		{"-2.5", "-2"},
		{"-2.51", "-3"},
		{"0", "0"},
	}
	for _, c := range cases {
		if got := money(c.in).Whole().Decimal.String(); got != c.out {
			t.Fatalf("whole(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestSumAndShare(t *testing.T) {
	total := Sum(stddec.NewFromInt(1850), stddec.NewFromFloat(-1645.82), stddec.NewFromFloat(-95))
	if total.String() != "109.18" {
		t.Fatalf("Sum got %s", total.String())
	}
	if !Sum().IsZero() {
		t.Fatalf("empty Sum not zero")
	}

	share := stddec.NewFromFloat(0.3333)
	one := total.Share(share)
	two := total.Share(share.Mul(stddec.NewFromInt(2)))
	if !two.Decimal.Equal(one.Decimal.Mul(stddec.NewFromInt(2))) {
		t.Fatalf("share scaling not linear: %s vs %s", two, one)
	}
	if got := one.Whole().Decimal.String(); got != "36" {
		t.Fatalf("share whole got %s", got)
	}
}
