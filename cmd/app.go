// Package cmd implements the CLI application to value a card collection.
package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&updateCmd{}, "portfolio")
	c.Register(&summaryCmd{}, "portfolio")
	c.Register(&pipelineCmd{}, "portfolio")
	c.Register(&catalogCmd{}, "catalog")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	inventoryDir  = flag.String("inventory-dir", "", "Folder of inventory CSV files (default ./card_inventory)")
	catalogDir    = flag.String("catalog-dir", "", "Folder of catalog JSON documents (default ./card_set_lookup)")
	portfolioFile = flag.String("portfolio-file", "", "Portfolio CSV file (default card_portfolio.csv)")
	currency      = flag.String("currency", "", "Currency of the catalog prices (default USD)")
	configFile    = flag.String("config", "", "TOML configuration file (default binder.toml when present)")
	testMode      = flag.Bool("test", false, "Use the test folders and portfolio file as defaults")

	Verbose = flag.Bool("v", false, "Log catalog and inventory details")
)

// stdout and stderr are the command outputs, tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)
