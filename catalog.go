package cardfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cardfolio/logging"
	"github.com/shopspring/decimal"
)

// DefaultPriceVariants is the default price preference: holofoil market
// price first, then the normal one.
var DefaultPriceVariants = []string{"holofoil", "normal"}

// priceRoots are the places where price variants are looked up in a catalog
// entry, in order.
var priceRoots = []string{"$.tcgplayer.prices", "$.prices"}

// Pricing controls how a market value is derived from a catalog entry.
type Pricing struct {
	Variants []string // price variants in order of preference
	Currency string
}

// DefaultPricing returns the holofoil then normal pricing in USD.
func DefaultPricing() Pricing {
	return Pricing{Variants: DefaultPriceVariants, Currency: DefaultCurrency}
}

// CatalogRecord is a priced reference card.
type CatalogRecord struct {
	ID          string
	Name        string
	Number      string
	SetID       string
	SetName     string
	MarketValue Money
}

// CatalogStats counts what went into a Catalog.
type CatalogStats struct {
	Documents  int // documents read
	Entries    int // entries with an id
	Skipped    int // entries without an id
	Duplicates int // entries resolved against an existing id
}

// Catalog is a reference table of cards with unique IDs.
type Catalog struct {
	records []CatalogRecord
	index   map[string]int
	stats   CatalogStats
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add adds a record to the catalog.
//
// IDs are unique: when the ID is already known, the record with the highest
// market value is kept and the other one discarded. On equal values the
// record added first is kept. Overlapping price documents therefore resolve
// to the most optimistic valuation, independently of the document order.
func (c *Catalog) Add(r CatalogRecord) {
	c.stats.Entries++
	i, exists := c.index[r.ID]
	if !exists {
		c.index[r.ID] = len(c.records)
		c.records = append(c.records, r)
		return
	}
	c.stats.Duplicates++
	if r.MarketValue.GreaterThan(c.records[i].MarketValue) {
		logging.Debug().Str("card_id", r.ID).Stringer("kept", r.MarketValue).Stringer("dropped", c.records[i].MarketValue).Msg("duplicate card in catalog")
		c.records[i] = r
	}
}

// Get returns the record for an ID.
func (c *Catalog) Get(id string) (CatalogRecord, bool) {
	i, ok := c.index[id]
	if !ok {
		return CatalogRecord{}, false
	}
	return c.records[i], true
}

// Len returns the number of unique cards.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of all records, in order of first appearance.
func (c *Catalog) Records() []CatalogRecord {
	out := make([]CatalogRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Stats returns the loading statistics.
func (c *Catalog) Stats() CatalogStats { return c.stats }

// LoadCatalog reads all the *.json documents in 'dir' into a single Catalog.
//
// A missing folder, or a folder without documents, results in an empty
// catalog. Documents are read in lexical order.
func LoadCatalog(dir string, p Pricing) (*Catalog, error) {
	c := NewCatalog()
	files, err := sourceFiles("catalog", dir, ".json")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		records, skipped, err := loadCatalogFile(file, p)
		if err != nil {
			return nil, err
		}
		c.stats.Documents++
		c.stats.Skipped += skipped
		for _, r := range records {
			c.Add(r)
		}
	}
	if c.Len() == 0 && len(files) > 0 {
		logging.Warn().Str("dir", dir).Msg("catalog documents contain no card")
	}
	return c, nil
}

func loadCatalogFile(file string, p Pricing) ([]CatalogRecord, int, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, 0, fmt.Errorf("could not open catalog document %q: %w", file, err)
	}
	defer f.Close()

	records, skipped, err := DecodeCatalogDocument(f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("could not decode catalog document %q: %w", file, err)
	}
	return records, skipped, nil
}

// DecodeCatalogDocument reads a catalog document: a JSON object whose "data"
// property lists the card entries.
//
// Each entry is flattened into a CatalogRecord:
//
//	id        -> ID
//	name      -> Name
//	number    -> Number
//	set.id    -> SetID
//	set.name  -> SetName
//
// The market value is the "market" price of the first price variant present,
// looked up under "tcgplayer.prices" then "prices", and zero if none is.
// Entries without an id are skipped and counted.
func DecodeCatalogDocument(r io.Reader, p Pricing) (records []CatalogRecord, skipped int, err error) {
	var doc struct {
		Data []any `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, 0, err
	}

	for _, entry := range doc.Data {
		rec := CatalogRecord{
			ID:      jsonString(entry, "$.id"),
			Name:    jsonString(entry, "$.name"),
			Number:  jsonString(entry, "$.number"),
			SetID:   jsonString(entry, "$.set.id"),
			SetName: jsonString(entry, "$.set.name"),
		}
		if rec.ID == "" {
			skipped++
			continue
		}
		rec.MarketValue = Money{value: marketValue(entry, p.Variants), cur: p.Currency}
		records = append(records, rec)
	}
	return records, skipped, nil
}

// marketValue resolves the market price of an entry following the variant preference.
func marketValue(entry any, variants []string) decimal.Decimal {
	var sources []Source[decimal.Decimal]
	for _, v := range variants {
		for _, root := range priceRoots {
			sources = append(sources, jsonPrice(entry, fmt.Sprintf("%s[%q].market", root, v)))
		}
	}
	return Fallback(decimal.Zero, sources...)
}

// jsonPrice is a Source for a price at 'path'. null, negative or non
// numerical values are absent.
func jsonPrice(entry any, path string) Source[decimal.Decimal] {
	return func() (decimal.Decimal, bool) {
		jval, err := jsonpath.Get(path, entry)
		if err != nil {
			return decimal.Zero, false
		}
		var d decimal.Decimal
		switch v := jval.(type) {
		case float64:
			d = decimal.NewFromFloat(v)
		case string:
			d, err = decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return decimal.Zero, false
			}
		default:
			return decimal.Zero, false
		}
		if d.IsNegative() {
			return decimal.Zero, false
		}
		return d, true
	}
}

// jsonString returns the value at 'path' as a string, "" when absent or null.
func jsonString(entry any, path string) string {
	jval, err := jsonpath.Get(path, entry)
	if err != nil {
		return ""
	}
	switch v := jval.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
