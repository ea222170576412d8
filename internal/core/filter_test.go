package core

import "testing"

func sampleExpenses() []Expense {
	return []Expense{
		{ID: "1", Amount: 100, Category: "food", Date: "2024-01-15"},
		{ID: "2", Amount: 250.5, Category: "transport", Date: "2024-02-01"},
		{ID: "3", Amount: 40, Category: "food", Date: "2024-03-21"}, // 1403/01/02
		{ID: "4", Amount: 60, Category: "bills", Date: "2024-03-19"}, // 1402/12/29
	}
}

func TestFilterNoCriteria(t *testing.T) {
	in := sampleExpenses()
	out := Filter(in, Criteria{})
	if len(out) != len(in) {
		t.Fatalf("empty criteria should return everything, got %d of %d", len(out), len(in))
	}
}

func TestFilterDateRange(t *testing.T) {
	out := Filter(sampleExpenses(), Criteria{
		Type:      FilterDateRange,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("expected only the January expense, got %v", out)
	}
}

func TestFilterDateRangeInclusiveBounds(t *testing.T) {
	out := Filter(sampleExpenses(), Criteria{
		Type:      FilterDateRange,
		StartDate: "2024-01-15",
		EndDate:   "2024-02-01",
	})
	if len(out) != 2 {
		t.Fatalf("bounds are inclusive, expected 2 records, got %v", out)
	}
}

func TestFilterDateRangeMissingBoundSkipsFilter(t *testing.T) {
	out := Filter(sampleExpenses(), Criteria{
		Type:      FilterDateRange,
		StartDate: "2024-01-01",
	})
	if len(out) != 4 {
		t.Fatalf("range filter without both bounds must not restrict, got %d records", len(out))
	}
}

func TestFilterMonthYear(t *testing.T) {
	out := Filter(sampleExpenses(), Criteria{
		Type:  FilterMonthYear,
		Month: 1,
		Year:  1403,
	})
	if len(out) != 1 || out[0].ID != "3" {
		t.Fatalf("expected only the Farvardin 1403 expense, got %v", out)
	}
}

func TestFilterCategoryComposes(t *testing.T) {
	out := Filter(sampleExpenses(), Criteria{
		Type:      FilterDateRange,
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
		Category:  "food",
	})
	if len(out) != 2 {
		t.Fatalf("expected the two food expenses, got %v", out)
	}
	for _, e := range out {
		if e.Category != "food" {
			t.Fatalf("category restriction leaked: %v", e)
		}
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	in := sampleExpenses()
	_ = Filter(in, Criteria{Category: "food"})
	if len(in) != 4 || in[1].ID != "2" {
		t.Fatalf("source slice was mutated: %v", in)
	}
}

func TestTotal(t *testing.T) {
	if got := Total(nil); got != 0 {
		t.Fatalf("Total(nil) = %v, want 0", got)
	}
	got := Total([]Expense{{Amount: 100}, {Amount: 250.5}})
	if got != 350.5 {
		t.Fatalf("Total = %v, want 350.5", got)
	}
}
