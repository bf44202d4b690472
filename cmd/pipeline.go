package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type pipelineCmd struct {
	markdown bool
}

func (*pipelineCmd) Name() string     { return "pipeline" }
func (*pipelineCmd) Synopsis() string { return "update the portfolio file, then summarize it" }
func (*pipelineCmd) Usage() string {
	return `binder pipeline [-md]

  Runs 'update' then 'summary'. The summary is skipped when the update fails.
`
}

func (c *pipelineCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Print the full markdown report.")
}

func (c *pipelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Fprintln(stderr, "[pipeline] Step 1: Update portfolio ...")
	if status := runUpdate(s); status != subcommands.ExitSuccess {
		fmt.Fprintln(stderr, "[pipeline] Update failed, summary skipped.")
		return status
	}
	fmt.Fprintln(stderr, "[pipeline] Step 2: Generate summary ...")
	status := runSummary(s, c.markdown)
	fmt.Fprintln(stderr, "[pipeline] Done.")
	return status
}
