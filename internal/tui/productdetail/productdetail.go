// ABOUTME: Product detail screen rendered in a scrollable viewport
// ABOUTME: Back navigation returns to the listing without refetching it

package productdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mstore/storefront/internal/api"
	"github.com/mstore/storefront/internal/tui/styles"
)

// BackMsg asks the root model to return to the listing.
type BackMsg struct{}

// ProductDetail is the single-product screen.
type ProductDetail struct {
	product *api.Product
	view    viewport.Model
	ready   bool
}

// New creates a detail screen for the given product.
func New(product *api.Product, width, height int) *ProductDetail {
	d := &ProductDetail{product: product}
	d.resize(width, height)
	return d
}

func (d *ProductDetail) resize(width, height int) {
	contentHeight := height - 4 // header and footer rows
	if contentHeight < 3 {
		contentHeight = 3
	}
	if width < 20 {
		width = 20
	}
	d.view = viewport.New(width, contentHeight)
	d.view.SetContent(renderProduct(d.product))
	d.ready = true
}

// Init implements tea.Model
func (d *ProductDetail) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (d *ProductDetail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.resize(msg.Width, msg.Height)
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return d, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	d.view, cmd = d.view.Update(msg)
	return d, cmd
}

// View implements tea.Model
func (d *ProductDetail) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s (#%d)", d.product.Title, d.product.ID)))
	sb.WriteString("\n")
	if d.ready {
		sb.WriteString(d.view.View())
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("↑/↓ scroll • esc back • q quit"))
	return sb.String()
}

// renderProduct formats the product body for the viewport
func renderProduct(p *api.Product) string {
	var sb strings.Builder

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
	fmt.Fprintf(&sb, "Weight:       %.2f\n", p.Weight)
	fmt.Fprintf(&sb, "Dimensions:   %.1f × %.1f × %.1f\n",
		p.Dimensions.Width, p.Dimensions.Height, p.Dimensions.Depth)
	fmt.Fprintf(&sb, "Shipping:     %s\n", p.ShippingInformation)
	fmt.Fprintf(&sb, "Warranty:     %s\n", p.WarrantyInformation)
	fmt.Fprintf(&sb, "Returns:      %s\n", p.ReturnPolicy)
	fmt.Fprintf(&sb, "Min. order:   %d\n", p.MinimumOrderQuantity)

	sb.WriteString("\n")
	sb.WriteString(p.Description)
	sb.WriteString("\n")

	if len(p.Reviews) > 0 {
		fmt.Fprintf(&sb, "\nReviews (%d):\n", len(p.Reviews))
		for _, r := range p.Reviews {
			fmt.Fprintf(&sb, "  %.0f/5  %s — %s\n", r.Rating, r.Comment, r.ReviewerName)
		}
	}

	return sb.String()
}
