package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/etnz/cardfolio/logging"
)

// Environment variables overriding the default settings.
// They are also passed to extensions with the resolved settings.
const (
	EnvInventoryDir  = "BINDER_INVENTORY_DIR"
	EnvCatalogDir    = "BINDER_CATALOG_DIR"
	EnvPortfolioFile = "BINDER_PORTFOLIO_FILE"
	EnvCurrency      = "BINDER_CURRENCY"
	EnvPriceVariants = "BINDER_PRICE_VARIANTS"
	EnvConfig        = "BINDER_CONFIG"
)

// RunExtension attempts to find and execute an external binder-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "binder-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logging.Debug().Str("command", externalCmdName).Err(err).Msg("external command not found in PATH")
		return false, 0
	}

	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass the resolved settings as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvInventoryDir+"="+s.InventoryDir)
	cmd.Env = append(cmd.Env, EnvCatalogDir+"="+s.CatalogDir)
	cmd.Env = append(cmd.Env, EnvPortfolioFile+"="+s.PortfolioFile)
	cmd.Env = append(cmd.Env, EnvCurrency+"="+s.Currency)
	cmd.Env = append(cmd.Env, EnvPriceVariants+"="+strings.Join(s.PriceVariants, ","))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
