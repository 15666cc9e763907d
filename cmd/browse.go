// ABOUTME: Browse command launching the interactive TUI
// ABOUTME: Wires the session manager, browser, and debug logging together

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mstore/storefront/internal/logging"
	"github.com/mstore/storefront/internal/session"
	"github.com/mstore/storefront/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open the interactive TUI: log in, browse and search products,
and inspect product details.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBrowse(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// runBrowse starts the TUI with file-backed debug logging
func runBrowse() error {
	configDir := session.DefaultConfigDir()

	logger, closeLog, err := logging.Open(configDir)
	if err == nil && closeLog != nil {
		defer closeLog()
	}

	mgr := newSessionManager()
	mgr.SetLogger(logger)

	return tui.Run(mgr, newBrowser(), logger)
}
