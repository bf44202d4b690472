package cardfolio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Portfolio columns, in file order.
const (
	ColIndex       = "index"
	ColCardID      = "card_id"
	ColSetName     = "set_name"
	ColMarketValue = "card_market_value"
)

// PortfolioColumns is the header of a portfolio file.
var PortfolioColumns = []string{
	ColIndex, ColBinderName, ColPageNumber, ColSlotNumber,
	ColCardID, ColCardName, ColSetName, ColCardNumber, ColMarketValue,
}

// ErrPortfolioNotFound reports a missing portfolio file.
var ErrPortfolioNotFound = fmt.Errorf("portfolio file not found: %w", fs.ErrNotExist)

// EncodePortfolio writes the portfolio as CSV with the PortfolioColumns
// header. An empty portfolio is a header only file.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PortfolioColumns); err != nil {
		return fmt.Errorf("cannot write portfolio header: %w", err)
	}
	for _, r := range p.Rows() {
		rec := []string{
			r.Index, r.BinderName, r.PageNumber, r.SlotNumber,
			r.CardID, r.CardName, r.SetName, r.CardNumber, r.MarketValue.Amount(),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write portfolio row %q: %w", r.Index, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SavePortfolio writes the portfolio to 'file', replacing it.
func SavePortfolio(file string, p *Portfolio) error {
	if dir := filepath.Dir(file); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for portfolio %q: %w", file, err)
		}
	}

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", file, err)
	}
	defer f.Close()

	if err := EncodePortfolio(f, p); err != nil {
		return fmt.Errorf("error writing portfolio file %q: %w", file, err)
	}
	return f.Close()
}

// DecodePortfolio reads a portfolio CSV. Columns are matched by name; a
// missing market value column or cell reads as zero.
//
// The file does not record catalog matches: a row is read as matched when it
// has a set name or a positive market value, the defaults only a missing card
// gets together.
func DecodePortfolio(r io.Reader, currency string) (*Portfolio, error) {
	p := NewPortfolio(currency)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio header: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	get := func(row []string, col string) string {
		i, ok := pos[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		value, err := ParseMoney(get(row, ColMarketValue), currency)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		setName := get(row, ColSetName)
		p.rows = append(p.rows, PortfolioRow{
			Index:       get(row, ColIndex),
			BinderName:  get(row, ColBinderName),
			PageNumber:  get(row, ColPageNumber),
			SlotNumber:  get(row, ColSlotNumber),
			CardID:      get(row, ColCardID),
			CardName:    get(row, ColCardName),
			SetName:     setName,
			CardNumber:  get(row, ColCardNumber),
			MarketValue: value,
			Matched:     setName != NotFound || value.IsPositive(),
		})
	}
	return p, nil
}

// LoadPortfolio reads the portfolio 'file'. A missing file is
// ErrPortfolioNotFound.
func LoadPortfolio(file, currency string) (*Portfolio, error) {
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPortfolioNotFound, file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", file, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f, currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", file, err)
	}
	return p, nil
}
