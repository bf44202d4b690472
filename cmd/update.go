package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/cardfolio"
	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "value the inventory against the catalog and write the portfolio file"
}
func (*updateCmd) Usage() string {
	return `binder update

  Reads every inventory CSV file and every catalog JSON document, values each
  card with its catalog market price and writes the portfolio CSV file.
  Cards missing from the catalog are valued at zero in set NOT_FOUND.
  A missing inventory still produces a portfolio file with a header only.

Usage Examples:
$ binder update
$ binder -test update
`
}
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}
func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return runUpdate(s)
}

// runUpdate updates the portfolio file. Only errors that left the portfolio
// file unwritten are failures.
func runUpdate(s settings) subcommands.ExitStatus {
	p, err := cardfolio.UpdatePortfolio(s.config())
	if errors.Is(err, cardfolio.ErrEmptyInventory) {
		fmt.Fprintf(stderr, "ERROR: %v.\n", err)
		fmt.Fprintf(stderr, "Wrote empty portfolio: %s\n", s.PortfolioFile)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error updating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Wrote portfolio: %s (%d cards)\n", s.PortfolioFile, p.Len())
	return subcommands.ExitSuccess
}
