package core

import (
	"math"
	"testing"
)

func TestDeriveCategoryValue(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"Food", "food"},
		{"Eating Out", "eating_out"},
		{"  Two   Words ", "_two_words_"},
		{"خوراکی", "خوراکی"},
	}
	for _, tc := range cases {
		if got := DeriveCategoryValue(tc.in); got != tc.out {
			t.Fatalf("DeriveCategoryValue(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("  Eating Out ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Label != "Eating Out" {
		t.Fatalf("label should be trimmed, got %q", c.Label)
	}

	if _, err := NewCategory("   "); err != ErrEmptyLabel {
		t.Fatalf("whitespace-only label should fail, got %v", err)
	}
}

func TestExpenseValid(t *testing.T) {
	cases := []struct {
		amount float64
		ok     bool
	}{
		{100, true},
		{0.5, true},
		{0, false},
		{-10, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, tc := range cases {
		e := Expense{Amount: tc.amount}
		if e.Valid() != tc.ok {
			t.Fatalf("Expense{Amount: %v}.Valid() = %v, want %v", tc.amount, e.Valid(), tc.ok)
		}
	}
}

func TestNewExpenseIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewExpenseID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
