package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// useFolder points the global flags to files under 'root' and captures the command outputs.
// It returns the captured stdout and stderr.
func useFolder(t *testing.T, root string) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	inv := filepath.Join(root, "card_inventory")
	cat := filepath.Join(root, "card_set_lookup")
	out := filepath.Join(root, "card_portfolio.csv")
	cfg := filepath.Join(root, "binder.toml")
	cur := ""
	test := false

	oldInv, oldCat, oldOut, oldCur, oldCfg, oldTest := inventoryDir, catalogDir, portfolioFile, currency, configFile, testMode
	inventoryDir, catalogDir, portfolioFile, currency, configFile, testMode = &inv, &cat, &out, &cur, &cfg, &test

	var o, e bytes.Buffer
	oldStdout, oldStderr := stdout, stderr
	stdout, stderr = &o, &e

	// the config file is explicit, make sure it exists.
	if _, err := os.Stat(cfg); err != nil {
		writeFile(t, cfg, "")
	}

	t.Cleanup(func() {
		inventoryDir, catalogDir, portfolioFile, currency, configFile, testMode = oldInv, oldCat, oldOut, oldCur, oldCfg, oldTest
		stdout, stderr = oldStdout, oldStderr
	})
	return &o, &e
}

// writeFile creates a file and its folder.
func writeFile(t *testing.T, file, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %q: %v", file, err)
	}
}

// clearEnv unsets the environment variables that could override the test settings.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvInventoryDir, EnvCatalogDir, EnvPortfolioFile, EnvCurrency, EnvPriceVariants, EnvConfig} {
		t.Setenv(k, "")
	}
}
