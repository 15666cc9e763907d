// ABOUTME: Product command for the storefront CLI
// ABOUTME: Shows the full detail of a single product

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mstore/storefront/internal/api"
)

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
	Long:  `Fetch and display the full detail of a single product by id.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid product id %q\n", args[0])
			os.Exit(2)
		}

		exitCode := runProduct(ctx, os.Stdout, id)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(productCmd)
}

// runProduct fetches one product and returns exit code
func runProduct(ctx context.Context, w io.Writer, id int) int {
	b := newBrowser()

	product, err := b.Detail(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatProductJSON(product))
	} else {
		fmt.Fprintln(w, formatProductHuman(product))
	}
	return 0
}

// formatProductHuman formats a product detail for human readability
func formatProductHuman(p *api.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (#%d)\n", p.Title, p.ID)
	if p.Brand != "" {
		fmt.Fprintf(&sb, "Brand:        %s\n", p.Brand)
	}
	fmt.Fprintf(&sb, "Category:     %s\n", p.Category)
	fmt.Fprintf(&sb, "Price:        %.2f (%.1f%% off)\n", p.Price, p.DiscountPercentage)
	fmt.Fprintf(&sb, "Rating:       %.2f\n", p.Rating)
	fmt.Fprintf(&sb, "Stock:        %d (%s)\n", p.Stock, p.AvailabilityStatus)
	fmt.Fprintf(&sb, "SKU:          %s\n", p.SKU)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags:         %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(&sb, "Shipping:     %s\n", p.ShippingInformation)
	fmt.Fprintf(&sb, "Warranty:     %s\n", p.WarrantyInformation)
	fmt.Fprintf(&sb, "Returns:      %s\n", p.ReturnPolicy)
	fmt.Fprintf(&sb, "Min. order:   %d\n", p.MinimumOrderQuantity)
	fmt.Fprintf(&sb, "\n%s", p.Description)
	if len(p.Reviews) > 0 {
		fmt.Fprintf(&sb, "\n\nReviews (%d):\n", len(p.Reviews))
		for _, r := range p.Reviews {
			fmt.Fprintf(&sb, "  %.0f/5  %s — %s\n", r.Rating, r.Comment, r.ReviewerName)
		}
	}
	return sb.String()
}

// formatProductJSON formats a product detail as JSON
func formatProductJSON(p *api.Product) string {
	data, _ := json.MarshalIndent(p, "", "  ")
	return string(data)
}
