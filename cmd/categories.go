// ABOUTME: Categories command for the storefront CLI
// ABOUTME: Lists the catalog category names

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Long:  `List the category names available in the catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCategories(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

// runCategories fetches the category list and returns exit code
func runCategories(ctx context.Context, w io.Writer) int {
	b := newBrowser()

	categories, err := b.Categories(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(categories, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, strings.Join(categories, "\n"))
	}
	return 0
}
