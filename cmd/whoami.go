// ABOUTME: Whoami command for the storefront CLI
// ABOUTME: Restores the persisted session and prints the identity

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mstore/storefront/internal/api"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Long: `Restore the persisted session and print the logged-in identity.

Exit codes:
  0 - Logged in
  1 - No session
  2 - Error reading the session store`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami restores the session and returns exit code
func runWhoami(w io.Writer) int {
	mgr := newSessionManager()
	if err := mgr.Restore(); err != nil {
		snap := mgr.Snapshot()
		fmt.Fprintf(w, "Error: %s (%v)\n", snap.Err, err)
		return 2
	}

	snap := mgr.Snapshot()
	if !snap.Authenticated {
		fmt.Fprintln(w, "Not logged in")
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatUserJSON(snap.User))
	} else {
		fmt.Fprintln(w, formatUserHuman(snap.User))
	}
	return 0
}

// formatUserHuman formats the identity for human readability
func formatUserHuman(u *api.User) string {
	return fmt.Sprintf(`Username: %s
Name:     %s %s
Email:    %s
ID:       %d`, u.Username, u.FirstName, u.LastName, u.Email, u.ID)
}

// formatUserJSON formats the identity as JSON
func formatUserJSON(u *api.User) string {
	data, _ := json.MarshalIndent(u, "", "  ")
	return string(data)
}
