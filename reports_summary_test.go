package cardfolio

import "testing"

func row(index, binder, id string, value float64) PortfolioRow {
	return PortfolioRow{Index: index, BinderName: binder, CardID: id, CardName: id, SetName: "Set", MarketValue: USD(value), Matched: true}
}

func TestNewSummary(t *testing.T) {
	p := NewPortfolio("USD",
		row("A:1:1", "A", "a-1", 0),
		row("A:1:2", "A", "a-2", 0),
		row("B:1:1", "B", "b-1", 12.5),
	)
	s := NewSummary(p)

	if s.IsEmpty() {
		t.Fatalf("IsEmpty() = true")
	}
	if !s.Total.Equal(USD(12.5)) || s.Total.String() != "$12.50" {
		t.Errorf("Total = %v, want $12.50", s.Total)
	}
	if s.MostValuable == nil || s.MostValuable.CardID != "b-1" {
		t.Errorf("MostValuable = %+v, want b-1", s.MostValuable)
	}
	if s.Priced != 1 || s.Cards != 3 {
		t.Errorf("Priced, Cards = %d, %d want 1, 3", s.Priced, s.Cards)
	}
	if len(s.Binders) != 2 || s.Binders[0].Name != "A" || s.Binders[0].Cards != 2 || !s.Binders[1].Total.Equal(USD(12.5)) {
		t.Errorf("Binders = %+v", s.Binders)
	}
}

func TestNewSummaryAllZero(t *testing.T) {
	p := NewPortfolio("USD", row("A:1:1", "A", "a-1", 0), row("A:1:2", "A", "a-2", 0))
	s := NewSummary(p)
	if s.MostValuable != nil {
		t.Errorf("MostValuable = %+v, want none", s.MostValuable)
	}
	if s.Total.String() != "$0.00" {
		t.Errorf("Total = %v, want $0.00", s.Total)
	}
	if len(s.Top) != 0 {
		t.Errorf("Top = %+v, want none", s.Top)
	}
}

func TestNewSummaryTieIsFirst(t *testing.T) {
	p := NewPortfolio("USD",
		row("A:1:1", "A", "a-1", 3),
		row("A:1:2", "A", "a-2", 7),
		row("A:1:3", "A", "a-3", 7),
	)
	s := NewSummary(p)
	if s.MostValuable == nil || s.MostValuable.CardID != "a-2" {
		t.Errorf("MostValuable = %+v, want the first 7.0 row", s.MostValuable)
	}
	if len(s.Top) != 3 || s.Top[0].CardID != "a-2" || s.Top[1].CardID != "a-3" || s.Top[2].CardID != "a-1" {
		t.Errorf("Top = %+v", s.Top)
	}
}

func TestNewSummaryEmpty(t *testing.T) {
	s := NewSummary(NewPortfolio("USD"))
	if !s.IsEmpty() || s.MostValuable != nil || s.Binders != nil {
		t.Errorf("NewSummary(empty) = %+v, want an empty summary", s)
	}
}

func TestNewSummaryUnmatched(t *testing.T) {
	r := row("A:1:1", "A", "a-1", 0)
	r.SetName, r.Matched = NotFound, false
	// in the catalog, without a set name
	noSet := row("A:1:3", "A", "a-3", 0)
	noSet.SetName = NotFound
	s := NewSummary(NewPortfolio("USD", r, row("A:1:2", "A", "a-2", 1), noSet))
	if s.Unmatched != 1 {
		t.Errorf("Unmatched = %d, want 1", s.Unmatched)
	}
}
