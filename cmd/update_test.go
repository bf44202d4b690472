package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const inventoryCSV = `card_name,set_id,card_number,binder_name,page_number,slot_number
,base1,4,Red Binder,1,1
Mew,150,4,Red Binder,1,2
Pikachu,base1,58,Blue Binder,2,1
`

const lookupJSON = `{"data": [
{"id": "base1-4", "name": "Charizard", "number": "4", "set": {"id": "base1", "name": "Base"},
 "tcgplayer": {"prices": {"holofoil": {"market": 1234.5}}}},
{"id": "base1-58", "name": "Pikachu", "number": "58", "set": {"id": "base1", "name": "Base"},
 "tcgplayer": {"prices": {"normal": {"market": 2}}}}
]}`

func collection(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "card_inventory", "binders.csv"), inventoryCSV)
	writeFile(t, filepath.Join(root, "card_set_lookup", "base1.json"), lookupJSON)
	return root
}

func TestUpdateCmd(t *testing.T) {
	clearEnv(t)
	root := collection(t)
	stdout, stderr := useFolder(t, root)

	cmd := &updateCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v: %s", status, stderr)
	}

	data, err := os.ReadFile(filepath.Join(root, "card_portfolio.csv"))
	if err != nil {
		t.Fatalf("Failed to read portfolio: %v", err)
	}
	want := `index,binder_name,page_number,slot_number,card_id,card_name,set_name,card_number,card_market_value
Red Binder:1:1,Red Binder,1,1,base1-4,Charizard,Base,4,1234.5
Red Binder:1:2,Red Binder,1,2,150-4,Mew,NOT_FOUND,4,0
Blue Binder:2:1,Blue Binder,2,1,base1-58,Pikachu,Base,58,2.00
`
	if string(data) != want {
		t.Errorf("portfolio =\n%s\nwant\n%s", data, want)
	}
	if !strings.Contains(stdout.String(), "Wrote portfolio") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestUpdateCmdNoInventory(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	_, stderr := useFolder(t, root)

	cmd := &updateCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(stderr.String(), "inventory is empty") {
		t.Errorf("stderr = %q, want a warning", stderr)
	}
	data, err := os.ReadFile(filepath.Join(root, "card_portfolio.csv"))
	if err != nil {
		t.Fatalf("Failed to read portfolio: %v", err)
	}
	if want := "index,binder_name,page_number,slot_number,card_id,card_name,set_name,card_number,card_market_value\n"; string(data) != want {
		t.Errorf("portfolio = %q, want a header only file", data)
	}
}

func TestUpdateCmdArgs(t *testing.T) {
	clearEnv(t)
	useFolder(t, t.TempDir())
	cmd := &updateCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Parse([]string{"extra"})
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError, got %v", status)
	}
}
