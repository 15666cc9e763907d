// ABOUTME: Logout command for the storefront CLI
// ABOUTME: Clears the persisted session and in-memory state

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the persisted session",
	Long: `Remove the persisted session so future commands start logged out.

Logging out when no session exists is not an error.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout executes the logout and returns exit code
func runLogout(w io.Writer) int {
	mgr := newSessionManager()
	if err := mgr.Logout(); err != nil {
		snap := mgr.Snapshot()
		fmt.Fprintf(w, "Error: %s (%v)\n", snap.Err, err)
		return 2
	}

	fmt.Fprintln(w, "Logged out")
	return 0
}
