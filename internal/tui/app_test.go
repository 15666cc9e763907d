// ABOUTME: Tests for the root TUI model
// ABOUTME: Walks the login, browse, and logout screen transitions

package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mstore/storefront/internal/api"
	"github.com/mstore/storefront/internal/catalog"
	"github.com/mstore/storefront/internal/session"
	"github.com/mstore/storefront/internal/tui/login"
	"github.com/mstore/storefront/internal/tui/productdetail"
	"github.com/mstore/storefront/internal/tui/productlist"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":       1,
			"username": "kminchelle",
			"token":    "abc",
		})
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.ProductPage{
			Products: []api.Product{{ID: 1, Title: "Essence Mascara"}},
			Total:    1,
			Limit:    10,
		})
	})
	mux.HandleFunc("/products/category-list", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"beauty"})
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Product{ID: 1, Title: "Essence Mascara"})
	})
	return httptest.NewServer(mux)
}

func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()
	store := session.NewFileStore(t.TempDir())
	mgr := session.NewManager(store, api.NewAuthClient(serverURL))
	browser := catalog.New(api.NewCatalogClient(serverURL))
	return New(mgr, browser, zerolog.Nop())
}

func TestApp_StartsOnLoginWithoutSession(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	a := newTestApp(t, server.URL)

	msg := a.restoreSession()()
	a.Update(msg)

	if a.screen != ScreenLogin {
		t.Errorf("expected login screen, got %d", a.screen)
	}
	if !strings.Contains(a.View(), "Sign in") {
		t.Error("expected login view to render")
	}
}

func TestApp_LoginEntersCatalog(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	a := newTestApp(t, server.URL)

	_, cmd := a.Update(login.SubmitMsg{Username: "kminchelle", Password: "0lelplR"})
	if cmd == nil {
		t.Fatal("expected a login command")
	}
	a.Update(cmd())

	if a.screen != ScreenList {
		t.Fatalf("expected list screen after login, got %d", a.screen)
	}

	a.Update(a.loadHome()())
	if !strings.Contains(a.View(), "Essence Mascara") {
		t.Error("expected product list to render after home load")
	}
	if !strings.Contains(a.View(), "kminchelle") {
		t.Error("expected logged-in user in the header")
	}
}

func TestApp_RestoreSkipsLoginWhenSessionExists(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	store := session.NewFileStore(t.TempDir())
	mgr := session.NewManager(store, api.NewAuthClient(server.URL))
	if err := mgr.Login(t.Context(), "kminchelle", "0lelplR"); err != nil {
		t.Fatalf("seed login failed: %v", err)
	}

	// A fresh manager over the same store simulates a restart.
	mgr2 := session.NewManager(store, api.NewAuthClient(server.URL))
	a := New(mgr2, catalog.New(api.NewCatalogClient(server.URL)), zerolog.Nop())

	a.Update(a.restoreSession()())

	if a.screen != ScreenList {
		t.Errorf("expected list screen after restore, got %d", a.screen)
	}
}

func TestApp_DetailAndBack(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	a := newTestApp(t, server.URL)
	a.screen = ScreenList

	a.Update(a.loadDetail(1)())
	if a.screen != ScreenDetail {
		t.Fatalf("expected detail screen, got %d", a.screen)
	}
	if !strings.Contains(a.View(), "Essence Mascara") {
		t.Error("expected product detail to render")
	}

	a.Update(productdetail.BackMsg{})
	if a.screen != ScreenList {
		t.Errorf("expected list screen after back, got %d", a.screen)
	}
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	a := newTestApp(t, server.URL)

	_, cmd := a.Update(login.SubmitMsg{Username: "kminchelle", Password: "0lelplR"})
	a.Update(cmd())
	if a.screen != ScreenList {
		t.Fatalf("expected list screen, got %d", a.screen)
	}

	_, cmd = a.Update(productlist.LogoutMsg{})
	if cmd == nil {
		t.Fatal("expected a logout command")
	}
	a.Update(cmd())

	if a.screen != ScreenLogin {
		t.Errorf("expected login screen after logout, got %d", a.screen)
	}
	if a.mgr.Snapshot().Authenticated {
		t.Error("expected session cleared after logout")
	}
}

func TestApp_FetchErrorShowsMessage(t *testing.T) {
	a := newTestApp(t, "http://localhost:99999")
	a.screen = ScreenList

	a.Update(a.loadPage(10, 0)())

	if !strings.Contains(a.View(), "cannot connect") {
		t.Error("expected fetch error in the list view")
	}
}
