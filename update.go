package cardfolio

import (
	"errors"

	"github.com/etnz/cardfolio/logging"
)

// This file contains the update of the portfolio file from the inventory and the catalog.

// Config locates the inputs and the output of an update.
type Config struct {
	InventoryDir  string // folder of inventory *.csv files
	CatalogDir    string // folder of catalog *.json documents
	PortfolioFile string // portfolio CSV to write
	Pricing       Pricing
}

// UpdatePortfolio loads the catalog and the inventory, reconciles them and
// saves the result into the portfolio file.
//
// Missing or empty source folders are not errors. When there is no inventory
// a header only portfolio file is still written, and the empty portfolio is
// returned along with ErrEmptyInventory. Any other error means that the
// portfolio file has not been written.
func UpdatePortfolio(cfg Config) (*Portfolio, error) {
	cat, err := LoadCatalog(cfg.CatalogDir, cfg.Pricing)
	if err != nil {
		return nil, err
	}
	inv, err := LoadInventory(cfg.InventoryDir)
	if err != nil {
		return nil, err
	}
	logging.Info().Int("cards", inv.Len()).Int("catalog", cat.Len()).Msg("reconciling inventory")

	p, rerr := Reconcile(inv, cat, cfg.Pricing.Currency)
	if rerr != nil && !errors.Is(rerr, ErrEmptyInventory) {
		return nil, rerr
	}
	if err := SavePortfolio(cfg.PortfolioFile, p); err != nil {
		return nil, err
	}
	return p, rerr
}
