package cardfolio

import (
	"slices"
	"strings"
)

// TopCards is the number of cards listed in Summary.Top.
const TopCards = 5

// BinderTotal is the value of the cards stored in one binder.
type BinderTotal struct {
	Name  string
	Cards int
	Total Money
}

// Summary provides an at-a-glance overview of the portfolio value.
type Summary struct {
	Currency     string
	Cards        int           // number of rows
	Total        Money         // sum of all the market values
	MostValuable *PortfolioRow // nil when no card has a positive market value
	Priced       int           // cards with a positive market value
	Unmatched    int           // cards not found in the catalog
	Binders      []BinderTotal // sorted by binder name
	Top          []PortfolioRow
}

// IsEmpty reports whether there was nothing to summarize.
func (s *Summary) IsEmpty() bool { return s.Cards == 0 }

// NewSummary computes the summary of a portfolio.
//
// The most valuable card is the one with the highest market value, the first
// one in portfolio order on ties, and only if that value is positive. An
// empty portfolio returns an empty summary without further computation.
func NewSummary(p *Portfolio) *Summary {
	s := &Summary{Currency: p.Currency(), Total: M(0, p.Currency())}
	if p.Len() == 0 {
		return s
	}
	rows := p.Rows()
	s.Cards = len(rows)

	best := -1
	binders := make(map[string]*BinderTotal)
	for i, r := range rows {
		s.Total = s.Total.Add(r.MarketValue)
		if r.MarketValue.IsPositive() {
			s.Priced++
			if best < 0 || r.MarketValue.GreaterThan(rows[best].MarketValue) {
				best = i
			}
		}
		if !r.Matched {
			s.Unmatched++
		}

		b, ok := binders[r.BinderName]
		if !ok {
			b = &BinderTotal{Name: r.BinderName, Total: M(0, p.Currency())}
			binders[r.BinderName] = b
		}
		b.Cards++
		b.Total = b.Total.Add(r.MarketValue)
	}

	if best >= 0 {
		mv := rows[best]
		s.MostValuable = &mv
	}

	for _, b := range binders {
		s.Binders = append(s.Binders, *b)
	}
	slices.SortFunc(s.Binders, func(a, b BinderTotal) int { return strings.Compare(a.Name, b.Name) })

	s.Top = topCards(rows, TopCards)
	return s
}

// topCards returns up to n cards with a positive value, most valuable first,
// in portfolio order on ties.
func topCards(rows []PortfolioRow, n int) []PortfolioRow {
	var priced []PortfolioRow
	for _, r := range rows {
		if r.MarketValue.IsPositive() {
			priced = append(priced, r)
		}
	}
	slices.SortStableFunc(priced, func(a, b PortfolioRow) int {
		return b.MarketValue.Decimal().Cmp(a.MarketValue.Decimal())
	})
	if len(priced) > n {
		priced = priced[:n]
	}
	return priced
}
