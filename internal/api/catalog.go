// ABOUTME: Catalog client for the storefront product API
// ABOUTME: Read-only list, search, category, and detail calls

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// CatalogClient issues read-only requests against the product endpoints.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient creates a catalog client for the given base URL.
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorResponse is the error body returned on non-2xx statuses.
type errorResponse struct {
	Message string `json:"message"`
}

// Products calls GET /products with pagination parameters.
// Bounds are not checked client-side; the server clamps them.
func (c *CatalogClient) Products(ctx context.Context, limit, skip int) (*ProductPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))

	var page ProductPage
	if err := c.get(ctx, "/products?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ProductByID calls GET /products/{id} for a single product.
func (c *CatalogClient) ProductByID(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := c.get(ctx, "/products/"+strconv.Itoa(id), &product); err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	return &product, nil
}

// SearchProducts calls GET /products/search with a percent-encoded query.
func (c *CatalogClient) SearchProducts(ctx context.Context, query string) (*ProductPage, error) {
	q := url.Values{}
	q.Set("q", query)

	var page ProductPage
	if err := c.get(ctx, "/products/search?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ProductsByCategory calls GET /products/category/{category}.
func (c *CatalogClient) ProductsByCategory(ctx context.Context, category string) (*ProductPage, error) {
	var page ProductPage
	if err := c.get(ctx, "/products/category/"+url.PathEscape(category), &page); err != nil {
		return nil, fmt.Errorf("category %q: %w", category, err)
	}
	return &page, nil
}

// Categories calls GET /products/category-list for the category names.
func (c *CatalogClient) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/products/category-list", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// get issues a GET request and decodes the JSON response into out.
func (c *CatalogClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from server: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *CatalogClient) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to server at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *CatalogClient) handleErrorResponse(resp *http.Response) error {
	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("server error: %s", errResp.Message)
}
