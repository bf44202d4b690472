package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/cardfolio"
	"github.com/google/subcommands"
)

type catalogCmd struct {
	id string
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "display what the catalog documents contain" }
func (*catalogCmd) Usage() string {
	return `binder catalog [-id <card_id>]

  Loads the catalog documents and prints how many cards they contain, or the
  catalog record of a single card with -id. Useful to understand why a card
  is NOT_FOUND.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Card id to look up, as <set_id>-<card_number>.")
}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg := s.config()
	cat, err := cardfolio.LoadCatalog(cfg.CatalogDir, cfg.Pricing)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.id != "" {
		r, ok := cat.Get(c.id)
		if !ok {
			fmt.Fprintf(stderr, "card %q not found in %s\n", c.id, cfg.CatalogDir)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%s\t%s\t#%s\t%s (%s)\t%s\n", r.ID, r.Name, r.Number, r.SetName, r.SetID, r.MarketValue)
		return subcommands.ExitSuccess
	}

	st := cat.Stats()
	fmt.Fprintf(stdout, "Documents: %d\n", st.Documents)
	fmt.Fprintf(stdout, "Cards: %d (%d entries, %d duplicates, %d without id)\n", cat.Len(), st.Entries, st.Duplicates, st.Skipped)
	return subcommands.ExitSuccess
}
