package cardfolio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Inventory columns.
const (
	ColCardName   = "card_name"
	ColSetID      = "set_id"
	ColCardNumber = "card_number"
	ColBinderName = "binder_name"
	ColPageNumber = "page_number"
	ColSlotNumber = "slot_number"
)

// InventoryColumns is the expected header of an inventory file.
var InventoryColumns = []string{ColCardName, ColSetID, ColCardNumber, ColBinderName, ColPageNumber, ColSlotNumber}

// InventoryRecord is a card physically stored in a binder.
type InventoryRecord struct {
	BinderName string
	PageNumber string
	SlotNumber string
	SetID      string
	CardNumber string
	CardName   string // optional
}

// CardID returns the identifier used to look the card up in the catalog.
// It is the exact concatenation of the set id and the card number, so "150"
// and "4" are "150-4".
func (r InventoryRecord) CardID() string { return r.SetID + "-" + r.CardNumber }

// Index returns the card location as "binder:page:slot".
func (r InventoryRecord) Index() string {
	return r.BinderName + ":" + r.PageNumber + ":" + r.SlotNumber
}

// Inventory is the list of cards in the collection.
type Inventory struct {
	records []InventoryRecord
	files   int
}

// NewInventory returns an inventory made of the given records.
func NewInventory(records ...InventoryRecord) *Inventory {
	return &Inventory{records: records}
}

// Len returns the number of records.
func (inv *Inventory) Len() int { return len(inv.records) }

// Files returns the number of files the inventory was read from.
func (inv *Inventory) Files() int { return inv.files }

// Records returns the records in file then row order.
func (inv *Inventory) Records() []InventoryRecord { return inv.records }

// LoadInventory reads all the *.csv files in 'dir' into a single Inventory.
//
// A missing folder, or a folder without files, results in an empty inventory.
// Files are read in lexical order.
func LoadInventory(dir string) (*Inventory, error) {
	inv := &Inventory{}
	files, err := sourceFiles("inventory", dir, ".csv")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		records, err := loadInventoryFile(file)
		if err != nil {
			return nil, err
		}
		inv.files++
		inv.records = append(inv.records, records...)
	}
	return inv, nil
}

func loadInventoryFile(file string) ([]InventoryRecord, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", file, err)
	}
	defer f.Close()

	records, err := DecodeInventory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", file, err)
	}
	return records, nil
}

// DecodeInventory reads an inventory CSV. Columns are matched by header name
// and may come in any order; missing columns read as empty values. Values are
// kept as text so that identifiers are never reformatted.
func DecodeInventory(r io.Reader) ([]InventoryRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	get := func(row []string, col string) string {
		i, ok := pos[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []InventoryRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if blank(row) {
			continue
		}
		records = append(records, InventoryRecord{
			BinderName: get(row, ColBinderName),
			PageNumber: get(row, ColPageNumber),
			SlotNumber: get(row, ColSlotNumber),
			SetID:      get(row, ColSetID),
			CardNumber: get(row, ColCardNumber),
			CardName:   get(row, ColCardName),
		})
	}
	return records, nil
}

// blank reports whether all the fields of a row are empty.
func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
