package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/cardfolio"
	"github.com/etnz/cardfolio/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	markdown bool
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "display the portfolio total value and most valuable card"
}
func (*summaryCmd) Usage() string {
	return `binder summary [-md]

  Reads the portfolio file and prints its total market value and the most
  valuable card. With -md, prints a full report with the value per binder and
  the top cards.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Print the full markdown report.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return runSummary(s, c.markdown)
}

// runSummary prints the summary of the portfolio file.
func runSummary(s settings, markdown bool) subcommands.ExitStatus {
	p, err := cardfolio.LoadPortfolio(s.PortfolioFile, s.Currency)
	if errors.Is(err, cardfolio.ErrPortfolioNotFound) {
		fmt.Fprintf(stderr, "ERROR: Portfolio file not found: %s\n", s.PortfolioFile)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error reading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := cardfolio.NewSummary(p)
	if markdown {
		printMarkdown(renderer.SummaryMarkdown(summary))
		return subcommands.ExitSuccess
	}
	fmt.Fprint(stdout, renderer.SummaryText(summary))
	return subcommands.ExitSuccess
}
