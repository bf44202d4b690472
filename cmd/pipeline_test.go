package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/cardfolio/renderer"
	"github.com/google/subcommands"
)

func TestPipelineCmd(t *testing.T) {
	clearEnv(t)
	stdout, stderr := useFolder(t, collection(t))

	cmd := &pipelineCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v: %s", status, stderr)
	}
	out := stdout.String()
	for _, want := range []string{
		"Wrote portfolio",
		"Total Portfolio Value: $1,236.50\n",
		"Most Valuable Card: Charizard (base1-4) - $1,234.50\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pipeline output is missing %q:\n%s", want, out)
		}
	}
}

func TestPipelineCmdStopsOnUpdateFailure(t *testing.T) {
	clearEnv(t)
	root := collection(t)
	writeFile(t, filepath.Join(root, "card_set_lookup", "broken.json"), "{")
	// a stale portfolio that must not be summarized
	writeFile(t, filepath.Join(root, "card_portfolio.csv"), "index,card_id,card_name,card_market_value\nA:1:1,x-1,Stale,99\n")
	stdout, stderr := useFolder(t, root)

	cmd := &pipelineCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Fatalf("Expected ExitFailure, got %v", status)
	}
	if strings.Contains(stdout.String(), "Stale") || strings.Contains(stdout.String(), "Total Portfolio Value") {
		t.Errorf("summary ran on stale data:\n%s", stdout)
	}
	if !strings.Contains(stderr.String(), "summary skipped") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestPipelineCmdEmptyInventory(t *testing.T) {
	clearEnv(t)
	stdout, stderr := useFolder(t, t.TempDir())

	cmd := &pipelineCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v: %s", status, stderr)
	}
	if !strings.Contains(stdout.String(), renderer.EmptyNotice) {
		t.Errorf("stdout = %q, want the empty notice", stdout)
	}
	if !strings.Contains(stderr.String(), "inventory is empty") {
		t.Errorf("stderr = %q", stderr)
	}
}
