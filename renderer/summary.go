package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/cardfolio"
	md "github.com/nao1215/markdown"
)

// EmptyNotice is printed instead of a summary for an empty portfolio.
const EmptyNotice = "Portfolio is empty. Nothing to summarize."

// SummaryText renders the summary as two lines: the total value and the most valuable card.
func SummaryText(s *cardfolio.Summary) string {
	if s.IsEmpty() {
		return EmptyNotice + "\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Total Portfolio Value: %s\n", s.Total)
	fmt.Fprintln(&b, mostValuable(s))
	return b.String()
}

func mostValuable(s *cardfolio.Summary) string {
	mv := s.MostValuable
	if mv == nil {
		return "Most Valuable Card: none found with market price."
	}
	return fmt.Sprintf("Most Valuable Card: %s (%s) - %s", orUnknown(mv.CardName), orUnknown(mv.CardID), mv.MarketValue)
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// SummaryMarkdown renders the summary as a markdown report with the value per binder and the top cards.
func SummaryMarkdown(s *cardfolio.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	if s.IsEmpty() {
		doc.PlainText(EmptyNotice)
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Total Portfolio Value: %s", s.Total))
	doc.PlainText("")
	doc.PlainText(mostValuable(s))

	doc.H2("Binders")
	binders := md.TableSet{Header: []string{"Binder", "Cards", "Value"}}
	for _, b := range s.Binders {
		binders.Rows = append(binders.Rows, []string{orUnknown(b.Name), strconv.Itoa(b.Cards), b.Total.String()})
	}
	doc.Table(binders)

	if len(s.Top) > 0 {
		doc.H2("Top Cards")
		top := md.TableSet{Header: []string{"Card", "ID", "Set", "Location", "Value"}}
		for _, r := range s.Top {
			top.Rows = append(top.Rows, []string{orUnknown(r.CardName), r.CardID, r.SetName, r.Index, r.MarketValue.String()})
		}
		doc.Table(top)
	}

	if s.Unmatched > 0 {
		doc.H2("Not Found")
		doc.PlainText(fmt.Sprintf("%d of %d cards are not in the catalog and are valued at %s.", s.Unmatched, s.Cards, cardfolio.M(0, s.Currency)))
	}
	return doc.String()
}
