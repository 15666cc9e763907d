// ABOUTME: Screen-level orchestration over the catalog client
// ABOUTME: Stateless per-call fetches with the empty-search fallback

package catalog

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mstore/storefront/internal/api"
)

// DefaultLimit is the page size used when the caller does not choose one.
const DefaultLimit = 10

// API is the catalog client surface the browser depends on.
type API interface {
	Products(ctx context.Context, limit, skip int) (*api.ProductPage, error)
	ProductByID(ctx context.Context, id int) (*api.Product, error)
	SearchProducts(ctx context.Context, query string) (*api.ProductPage, error)
	ProductsByCategory(ctx context.Context, category string) (*api.ProductPage, error)
	Categories(ctx context.Context) ([]string, error)
}

// Browser orchestrates catalog fetches for screens. It holds no state
// between calls and caches nothing; every call hits the server.
type Browser struct {
	client API
}

// New creates a browser over the given catalog client.
func New(client API) *Browser {
	return &Browser{client: client}
}

// List fetches one page of products.
func (b *Browser) List(ctx context.Context, limit, skip int) (*api.ProductPage, error) {
	return b.client.Products(ctx, limit, skip)
}

// Search runs a product search. An empty or whitespace-only query is
// not a search: it falls back to the default listing and never reaches
// the search endpoint.
func (b *Browser) Search(ctx context.Context, query string) (*api.ProductPage, error) {
	if strings.TrimSpace(query) == "" {
		return b.client.Products(ctx, DefaultLimit, 0)
	}
	return b.client.SearchProducts(ctx, query)
}

// Detail fetches a single product by id.
func (b *Browser) Detail(ctx context.Context, id int) (*api.Product, error) {
	return b.client.ProductByID(ctx, id)
}

// ByCategory fetches the products in one category.
func (b *Browser) ByCategory(ctx context.Context, category string) (*api.ProductPage, error) {
	return b.client.ProductsByCategory(ctx, category)
}

// Categories fetches the category names.
func (b *Browser) Categories(ctx context.Context) ([]string, error) {
	return b.client.Categories(ctx)
}

// Home fetches the first product page and the category list
// concurrently for the initial screen. The two calls are independent,
// so either error fails the whole fetch.
func (b *Browser) Home(ctx context.Context) (*api.ProductPage, []string, error) {
	var (
		page       *api.ProductPage
		categories []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = b.client.Products(ctx, DefaultLimit, 0)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = b.client.Categories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return page, categories, nil
}
