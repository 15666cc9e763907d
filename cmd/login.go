// ABOUTME: Login command for the storefront CLI
// ABOUTME: Prompts for missing credentials and persists the session

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mstore/storefront/internal/session"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in and persist the session",
	Long: `Authenticate against the storefront API and persist the session
so later commands and the TUI start logged in.

Credentials not given on the command line are prompted for interactively.

Exit codes:
  0 - Logged in
  1 - Credentials rejected by the server
  2 - Error (connectivity, empty credentials)`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		username := ""
		if len(args) > 0 {
			username = args[0]
		}

		exitCode := runLogin(ctx, os.Stdout, username, loginPassword)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted for when omitted)")
}

// runLogin executes the login flow and returns exit code
func runLogin(ctx context.Context, w io.Writer, username, password string) int {
	if username == "" || password == "" {
		var err error
		username, password, err = promptCredentials(username)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	mgr := newSessionManager()
	if err := mgr.Login(ctx, username, password); err != nil {
		snap := mgr.Snapshot()
		if errors.Is(err, session.ErrLoginRejected) {
			fmt.Fprintf(w, "Login failed: %s\n", snap.Err)
			return 1
		}
		if errors.Is(err, session.ErrEmptyCredentials) {
			fmt.Fprintln(w, "Error: username and password are required")
			return 2
		}
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	snap := mgr.Snapshot()
	fmt.Fprintf(w, "Logged in as %s %s (%s)\n", snap.User.FirstName, snap.User.LastName, snap.User.Username)
	return 0
}

// promptCredentials asks for whichever credentials are missing
func promptCredentials(username string) (string, string, error) {
	var password string

	var fields []huh.Field
	if username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&username))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return username, password, nil
}
