package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/cardfolio"
	"github.com/pelletier/go-toml/v2"
)

// defaultConfigFile is read when present and no config file is given.
const defaultConfigFile = "binder.toml"

// settings are the resolved locations and pricing of a run.
//
// Each value comes from, in order of precedence: the command line flag, the
// environment variable, the TOML configuration file, the default.
type settings struct {
	InventoryDir  string   `toml:"inventory_dir"`
	CatalogDir    string   `toml:"catalog_dir"`
	PortfolioFile string   `toml:"portfolio_file"`
	Currency      string   `toml:"currency"`
	PriceVariants []string `toml:"price_variants"`
}

func defaultSettings(test bool) settings {
	if test {
		return settings{
			InventoryDir:  "./card_inventory_test",
			CatalogDir:    "./card_set_lookup_test",
			PortfolioFile: "test_card_portfolio.csv",
			Currency:      cardfolio.DefaultCurrency,
			PriceVariants: cardfolio.DefaultPriceVariants,
		}
	}
	return settings{
		InventoryDir:  "./card_inventory",
		CatalogDir:    "./card_set_lookup",
		PortfolioFile: "card_portfolio.csv",
		Currency:      cardfolio.DefaultCurrency,
		PriceVariants: cardfolio.DefaultPriceVariants,
	}
}

// loadSettings resolves the settings from the global flags.
func loadSettings() (settings, error) {
	s := defaultSettings(*testMode)

	file, required := *configFile, true
	if file == "" {
		file = os.Getenv(EnvConfig)
	}
	if file == "" {
		file, required = defaultConfigFile, false
	}
	fromFile, err := readSettingsFile(file)
	switch {
	case errors.Is(err, os.ErrNotExist) && !required:
	case err != nil:
		return s, err
	default:
		s.merge(fromFile)
	}

	s.merge(settings{
		InventoryDir:  os.Getenv(EnvInventoryDir),
		CatalogDir:    os.Getenv(EnvCatalogDir),
		PortfolioFile: os.Getenv(EnvPortfolioFile),
		Currency:      os.Getenv(EnvCurrency),
		PriceVariants: splitList(os.Getenv(EnvPriceVariants)),
	})
	s.merge(settings{
		InventoryDir:  *inventoryDir,
		CatalogDir:    *catalogDir,
		PortfolioFile: *portfolioFile,
		Currency:      *currency,
	})
	s.Currency = strings.ToUpper(s.Currency)
	return s, nil
}

// readSettingsFile decodes a TOML configuration file.
func readSettingsFile(file string) (settings, error) {
	var s settings
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("configuration file %q: %w", file, err)
		}
		return s, fmt.Errorf("cannot read configuration file %q: %w", file, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("invalid configuration file %q: %w", file, err)
	}
	return s, nil
}

// splitList splits a comma separated list, ignoring empty items.
func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// merge overrides the settings with the non empty values of 'o'.
func (s *settings) merge(o settings) {
	s.InventoryDir = cardfolio.Coalesce(o.InventoryDir, s.InventoryDir)
	s.CatalogDir = cardfolio.Coalesce(o.CatalogDir, s.CatalogDir)
	s.PortfolioFile = cardfolio.Coalesce(o.PortfolioFile, s.PortfolioFile)
	s.Currency = cardfolio.Coalesce(o.Currency, s.Currency)
	if len(o.PriceVariants) > 0 {
		s.PriceVariants = o.PriceVariants
	}
}

// config returns the update configuration.
func (s settings) config() cardfolio.Config {
	return cardfolio.Config{
		InventoryDir:  s.InventoryDir,
		CatalogDir:    s.CatalogDir,
		PortfolioFile: s.PortfolioFile,
		Pricing: cardfolio.Pricing{
			Variants: s.PriceVariants,
			Currency: s.Currency,
		},
	}
}
