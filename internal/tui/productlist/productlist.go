// ABOUTME: Product listing screen with search and category filtering
// ABOUTME: Emits fetch-request messages handled by the root model

package productlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mstore/storefront/internal/api"
	"github.com/mstore/storefront/internal/tui/styles"
)

// SearchMsg asks the root model to run a search.
type SearchMsg struct {
	Query string
}

// PageMsg asks the root model to load a listing page.
type PageMsg struct {
	Limit int
	Skip  int
}

// CategoryMsg asks the root model to load one category.
// An empty category means the unfiltered listing.
type CategoryMsg struct {
	Category string
}

// OpenMsg asks the root model to open a product's detail screen.
type OpenMsg struct {
	ID int
}

// LogoutMsg asks the root model to log the user out.
type LogoutMsg struct{}

// ProductList is the catalog listing screen.
type ProductList struct {
	page       *api.ProductPage
	categories []string
	category   int // index into categories+1; 0 = all
	cursor     int
	searching  bool
	loading    bool
	errMsg     string
	search     textinput.Model
	spin       spinner.Model
	width      int
	height     int
}

// New creates the listing screen.
func New() *ProductList {
	search := textinput.New()
	search.Placeholder = "search products"
	search.CharLimit = 80

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &ProductList{
		search:  search,
		spin:    spin,
		loading: true,
	}
}

// Searching reports whether the search input currently has focus.
func (p *ProductList) Searching() bool {
	return p.searching
}

// SetSize updates the layout bounds.
func (p *ProductList) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetData replaces the displayed page and category list.
func (p *ProductList) SetData(page *api.ProductPage, categories []string) {
	p.page = page
	if categories != nil {
		p.categories = categories
	}
	p.loading = false
	p.errMsg = ""
	if p.cursor >= len(page.Products) {
		p.cursor = 0
	}
}

// SetError shows a fetch failure without discarding the current page.
func (p *ProductList) SetError(msg string) {
	p.loading = false
	p.errMsg = msg
}

// Init implements tea.Model
func (p *ProductList) Init() tea.Cmd {
	return p.spin.Tick
}

// Update implements tea.Model
func (p *ProductList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, nil

	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.searching {
			return p.updateSearch(msg)
		}
		return p.updateBrowse(msg)
	}

	return p, nil
}

// updateSearch handles keys while the search input is focused
func (p *ProductList) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := p.search.Value()
		p.searching = false
		p.search.Blur()
		p.loading = true
		return p, tea.Batch(p.spin.Tick, func() tea.Msg {
			return SearchMsg{Query: query}
		})
	case "esc":
		p.searching = false
		p.search.Blur()
		return p, nil
	}

	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	return p, cmd
}

// updateBrowse handles keys in browsing mode
func (p *ProductList) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.page != nil && p.cursor < len(p.page.Products)-1 {
			p.cursor++
		}
	case "enter":
		if p.page != nil && p.cursor < len(p.page.Products) {
			id := p.page.Products[p.cursor].ID
			return p, func() tea.Msg { return OpenMsg{ID: id} }
		}
	case "/":
		p.searching = true
		p.search.SetValue("")
		return p, p.search.Focus()
	case "c":
		return p.cycleCategory()
	case "right", "l":
		if p.page != nil && p.page.Skip+p.page.Limit < p.page.Total {
			return p.requestPage(p.page.Skip + p.page.Limit)
		}
	case "left", "h":
		if p.page != nil && p.page.Skip > 0 {
			skip := p.page.Skip - p.page.Limit
			if skip < 0 {
				skip = 0
			}
			return p.requestPage(skip)
		}
	case "ctrl+d":
		return p, func() tea.Msg { return LogoutMsg{} }
	}
	return p, nil
}

// cycleCategory advances the category filter, wrapping back to "all"
func (p *ProductList) cycleCategory() (tea.Model, tea.Cmd) {
	if len(p.categories) == 0 {
		return p, nil
	}
	p.category = (p.category + 1) % (len(p.categories) + 1)
	p.loading = true
	p.cursor = 0

	category := ""
	if p.category > 0 {
		category = p.categories[p.category-1]
	}
	return p, tea.Batch(p.spin.Tick, func() tea.Msg {
		return CategoryMsg{Category: category}
	})
}

// requestPage asks for a listing page at the given offset
func (p *ProductList) requestPage(skip int) (tea.Model, tea.Cmd) {
	limit := p.page.Limit
	p.loading = true
	p.cursor = 0
	return p, tea.Batch(p.spin.Tick, func() tea.Msg {
		return PageMsg{Limit: limit, Skip: skip}
	})
}

// View implements tea.Model
func (p *ProductList) View() string {
	var sb strings.Builder

	title := "Products"
	if p.category > 0 && p.category <= len(p.categories) {
		title = fmt.Sprintf("Products — %s", p.categories[p.category-1])
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")

	if p.searching {
		sb.WriteString(p.search.View())
		sb.WriteString("\n\n")
	}

	switch {
	case p.loading:
		sb.WriteString(p.spin.View())
		sb.WriteString(" loading…\n")
	case p.errMsg != "":
		sb.WriteString(styles.StatusError.Render(p.errMsg))
		sb.WriteString("\n")
	case p.page == nil || len(p.page.Products) == 0:
		sb.WriteString(styles.Dimmed.Render("No products found."))
		sb.WriteString("\n")
	default:
		sb.WriteString(p.renderRows())
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render(fmt.Sprintf(
			"Showing %d–%d of %d",
			p.page.Skip+1, p.page.Skip+len(p.page.Products), p.page.Total)))
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render(
		"↑/↓ move • enter detail • / search • c category • ←/→ page • ctrl+d logout • q quit"))
	return sb.String()
}

// renderRows renders the product rows with the cursor highlighted
func (p *ProductList) renderRows() string {
	var sb strings.Builder
	for i, product := range p.page.Products {
		line := fmt.Sprintf("%4d  %-40s  %8.2f  %s",
			product.ID, truncate(product.Title, 40), product.Price, product.Category)
		if i == p.cursor {
			sb.WriteString(styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// truncate shortens s to max runes with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
