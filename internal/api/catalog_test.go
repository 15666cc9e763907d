// ABOUTME: Tests for the catalog client
// ABOUTME: Uses httptest to verify paths, encoding, and error mapping

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("expected path /products, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("expected limit=5, got %s", got)
		}
		if got := r.URL.Query().Get("skip"); got != "10" {
			t.Errorf("expected skip=10, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductPage{
			Products: []Product{{ID: 11, Title: "perfume Oil", Price: 13}},
			Total:    100,
			Skip:     10,
			Limit:    5,
		})
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL)
	page, err := c.Products(context.Background(), 5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 100 || page.Skip != 10 || page.Limit != 5 {
		t.Errorf("unexpected page envelope: %+v", page)
	}
	if len(page.Products) != 1 || page.Products[0].Title != "perfume Oil" {
		t.Errorf("unexpected products: %+v", page.Products)
	}
}

func TestProductByID_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/42" {
			t.Errorf("expected path /products/42, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Product{
			ID:    42,
			Title: "Hand towel",
			Reviews: []ProductReview{
				{Rating: 4, Comment: "Soft", ReviewerName: "A"},
			},
		})
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL)
	product, err := c.ProductByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.ID != 42 || product.Title != "Hand towel" {
		t.Errorf("unexpected product: %+v", product)
	}
	if len(product.Reviews) != 1 || product.Reviews[0].Rating != 4 {
		t.Errorf("unexpected reviews: %+v", product.Reviews)
	}
}

func TestProductByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Product with id '9999' not found"})
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL)
	_, err := c.ProductByID(context.Background(), 9999)
	if err == nil {
		t.Fatal("expected error for missing product, got nil")
	}
	if !strings.Contains(err.Error(), "9999") {
		t.Errorf("expected error to identify the requested id, got %v", err)
	}
}

func TestSearchProducts_EncodesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/search" {
			t.Errorf("expected path /products/search, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "red shirt & tie" {
			t.Errorf("query not round-tripped, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductPage{})
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL)
	if _, err := c.SearchProducts(context.Background(), "red shirt & tie"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductsByCategory_EncodesCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/category/home decoration" {
			t.Errorf("unexpected decoded path %q", r.URL.Path)
		}
		if !strings.Contains(r.URL.EscapedPath(), "home%20decoration") {
			t.Errorf("category segment not percent-encoded: %q", r.URL.EscapedPath())
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductPage{})
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL)
	if _, err := c.ProductsByCategory(context.Background(), "home decoration"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCategories_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/category-list" {
			t.Errorf("expected path /products/category-list, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]string{"beauty", "fragrances"})
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL)
	categories, err := c.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 || categories[0] != "beauty" {
		t.Errorf("unexpected categories: %v", categories)
	}
}

func TestProducts_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL)
	_, err := c.Products(context.Background(), 10, 0)
	if err == nil {
		t.Error("expected error for non-OK status, got nil")
	}
}

func TestProducts_ConnectionError(t *testing.T) {
	c := NewCatalogClient("http://localhost:99999")
	_, err := c.Products(context.Background(), 10, 0)
	if err == nil {
		t.Error("expected connection error, got nil")
	}
}
