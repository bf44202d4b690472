package cardfolio

import "errors"

// Defaults for the values a card could not get from any source.
const (
	// NotFound is the set name of cards missing from the catalog.
	NotFound = "NOT_FOUND"
	// Empty is the value of a text field present in no source.
	Empty = ""
)

// ErrEmptyInventory reports that there was no card to reconcile.
var ErrEmptyInventory = errors.New("no inventory CSVs found or inventory is empty")

// PortfolioRow is a card of the collection valued against the catalog.
type PortfolioRow struct {
	Index       string // binder:page:slot
	BinderName  string
	PageNumber  string
	SlotNumber  string
	CardID      string
	CardName    string
	SetName     string
	CardNumber  string
	MarketValue Money
	Matched     bool // the card was found in the catalog
}

// Portfolio is the valued collection, one row per inventory record, in inventory order.
type Portfolio struct {
	currency string
	rows     []PortfolioRow
}

// NewPortfolio returns a portfolio made of 'rows' valued in 'currency'.
func NewPortfolio(currency string, rows ...PortfolioRow) *Portfolio {
	return &Portfolio{currency: currency, rows: rows}
}

// Currency returns the currency of the market values.
func (p *Portfolio) Currency() string { return p.currency }

// Len returns the number of rows.
func (p *Portfolio) Len() int { return len(p.rows) }

// Rows returns the rows in inventory order.
func (p *Portfolio) Rows() []PortfolioRow { return p.rows }

// Reconcile values every inventory record against the catalog.
//
// Each inventory record produces exactly one row:
//   - card name and number come from the catalog when it has them, otherwise
//     from the inventory, otherwise they are empty. Each field is resolved on
//     its own.
//   - market value and set name come from the catalog, or default to zero and
//     NotFound for cards missing from it.
//
// An empty inventory returns an empty portfolio and ErrEmptyInventory. The
// portfolio is always valid and can be saved.
func Reconcile(inv *Inventory, cat *Catalog, currency string) (*Portfolio, error) {
	p := NewPortfolio(currency)
	if inv == nil || inv.Len() == 0 {
		return p, ErrEmptyInventory
	}
	if cat == nil {
		cat = NewCatalog()
	}

	p.rows = make([]PortfolioRow, 0, inv.Len())
	for _, r := range inv.Records() {
		id := r.CardID()
		// only the enrichment fields are taken from the catalog, the rest stays zero
		look, found := cat.Get(id)

		row := PortfolioRow{
			Index:       r.Index(),
			BinderName:  r.BinderName,
			PageNumber:  r.PageNumber,
			SlotNumber:  r.SlotNumber,
			CardID:      id,
			CardName:    Coalesce(look.Name, r.CardName, Empty),
			CardNumber:  Coalesce(look.Number, r.CardNumber, Empty),
			SetName:     Coalesce(look.SetName, NotFound),
			MarketValue: Money{value: look.MarketValue.value, cur: currency},
			Matched:     found,
		}
		p.rows = append(p.rows, row)
	}
	return p, nil
}
