// ABOUTME: Search command for the storefront CLI
// ABOUTME: Full-text product search with the default-listing fallback

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search catalog products",
	Long: `Search products by name and description.

An empty query lists the default product page instead of searching.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSearch(ctx, os.Stdout, strings.Join(args, " "))
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// runSearch executes the search and returns exit code
func runSearch(ctx context.Context, w io.Writer, query string) int {
	b := newBrowser()

	page, err := b.Search(ctx, query)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatPageJSON(page))
	} else {
		fmt.Fprintln(w, formatPageHuman(page))
	}
	return 0
}
