// ABOUTME: Products command for the storefront CLI
// ABOUTME: Lists a page of products, optionally filtered by category

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

	"github.com/mstore/storefront/internal/api"
	"github.com/mstore/storefront/internal/catalog"
)

var (
	productsLimit    int
	productsSkip     int
	productsCategory string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long:  `List one page of catalog products, optionally filtered by category.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProducts(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.Flags().IntVar(&productsLimit, "limit", catalog.DefaultLimit, "Maximum number of products to return")
	productsCmd.Flags().IntVar(&productsSkip, "skip", 0, "Number of products to skip")
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "Only list products in this category")
}

// runProducts fetches the listing and returns exit code
func runProducts(ctx context.Context, w io.Writer) int {
	b := newBrowser()

	var (
		page *api.ProductPage
		err  error
	)
	if productsCategory != "" {
		page, err = b.ByCategory(ctx, productsCategory)
	} else {
		page, err = b.List(ctx, productsLimit, productsSkip)
	}
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

// formatPageHuman formats a product page for human readability
func formatPageHuman(page *api.ProductPage) string {
	var sb strings.Builder
	for _, p := range page.Products {
		fmt.Fprintf(&sb, "%4d  %-40s  %8.2f  %s\n", p.ID, truncate(p.Title, 40), p.Price, p.Category)
	}
	fmt.Fprintf(&sb, "Showing %d of %d (skip %d)", len(page.Products), page.Total, page.Skip)
	return sb.String()
}

// formatPageJSON formats a product page as JSON
func formatPageJSON(page *api.ProductPage) string {
	data, _ := json.MarshalIndent(page, "", "  ")
	return string(data)
}

// truncate shortens s to max runes with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
