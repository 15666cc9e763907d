// ABOUTME: Root bubbletea model for the storefront TUI
// ABOUTME: Routes between login, product list, and product detail screens

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mstore/storefront/internal/api"
	"github.com/mstore/storefront/internal/catalog"
	"github.com/mstore/storefront/internal/session"
	"github.com/mstore/storefront/internal/tui/login"
	"github.com/mstore/storefront/internal/tui/productdetail"
	"github.com/mstore/storefront/internal/tui/productlist"
	"github.com/mstore/storefront/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenList
	ScreenDetail
)

// sessionRestoredMsg is sent when the startup session restore finishes
type sessionRestoredMsg struct {
	err error
}

// loginResultMsg is sent when a login attempt finishes
type loginResultMsg struct {
	err error
}

// loggedOutMsg is sent when logout finishes
type loggedOutMsg struct {
	err error
}

// homeLoadedMsg is sent when the initial page and categories are loaded
type homeLoadedMsg struct {
	page       *api.ProductPage
	categories []string
	err        error
}

// pageLoadedMsg is sent when a listing, search, or category fetch finishes
type pageLoadedMsg struct {
	page *api.ProductPage
	err  error
}

// detailLoadedMsg is sent when a product detail fetch finishes
type detailLoadedMsg struct {
	product *api.Product
	err     error
}

// App is the root model for the TUI
type App struct {
	mgr     *session.Manager
	browser *catalog.Browser
	log     zerolog.Logger

	screen Screen
	width  int
	height int

	loginScreen *login.Login
	list        *productlist.ProductList
	detail      *productdetail.ProductDetail
}

// New creates a new TUI application
func New(mgr *session.Manager, browser *catalog.Browser, log zerolog.Logger) *App {
	return &App{
		mgr:         mgr,
		browser:     browser,
		log:         log,
		screen:      ScreenLogin,
		loginScreen: login.New(),
		list:        productlist.New(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loginScreen.Init(), a.restoreSession())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		if a.detail != nil {
			a.detail.Update(msg)
		}
		a.loginScreen.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "q" && a.quittable() {
			return a, tea.Quit
		}
		return a.routeKey(msg)

	case sessionRestoredMsg:
		return a.onSessionRestored(msg)

	case login.SubmitMsg:
		a.loginScreen.SetBusy()
		return a, a.doLogin(msg.Username, msg.Password)

	case loginResultMsg:
		return a.onLoginResult(msg)

	case loggedOutMsg:
		return a.onLoggedOut(msg)

	case homeLoadedMsg:
		if msg.err != nil {
			a.list.SetError(friendly(msg.err))
		} else {
			a.list.SetData(msg.page, msg.categories)
		}
		return a, nil

	case pageLoadedMsg:
		if msg.err != nil {
			a.list.SetError(friendly(msg.err))
		} else {
			a.list.SetData(msg.page, nil)
		}
		return a, nil

	case detailLoadedMsg:
		if msg.err != nil {
			a.list.SetError(friendly(msg.err))
			return a, nil
		}
		a.detail = productdetail.New(msg.product, a.width, a.height)
		a.screen = ScreenDetail
		return a, a.detail.Init()

	case productlist.SearchMsg:
		return a, a.loadSearch(msg.Query)

	case productlist.PageMsg:
		return a, a.loadPage(msg.Limit, msg.Skip)

	case productlist.CategoryMsg:
		return a, a.loadCategory(msg.Category)

	case productlist.OpenMsg:
		return a, a.loadDetail(msg.ID)

	case productlist.LogoutMsg:
		return a, a.doLogout()

	case productdetail.BackMsg:
		a.screen = ScreenList
		return a, nil
	}

	// Everything else (spinner ticks, form messages) goes to the
	// current screen.
	return a.routeToScreen(msg)
}

// quittable reports whether "q" should quit instead of being typed
func (a *App) quittable() bool {
	switch a.screen {
	case ScreenList:
		return !a.list.Searching()
	case ScreenDetail:
		return true
	}
	return false
}

// routeKey sends a key to the current screen
func (a *App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	return a.routeToScreen(msg)
}

// routeToScreen forwards a message to the active child model
func (a *App) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		_, cmd := a.loginScreen.Update(msg)
		return a, cmd
	case ScreenList:
		_, cmd := a.list.Update(msg)
		return a, cmd
	case ScreenDetail:
		if a.detail != nil {
			_, cmd := a.detail.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

// onSessionRestored enters the catalog when a session exists
func (a *App) onSessionRestored(msg sessionRestoredMsg) (tea.Model, tea.Cmd) {
	snap := a.mgr.Snapshot()
	if msg.err != nil {
		a.log.Debug().Err(msg.err).Msg("session restore failed")
		a.loginScreen.SetError(snap.Err)
		a.screen = ScreenLogin
		return a, nil
	}
	if !snap.Authenticated {
		a.screen = ScreenLogin
		return a, nil
	}

	a.screen = ScreenList
	return a, tea.Batch(a.list.Init(), a.loadHome())
}

// onLoginResult enters the catalog on success, re-arms the form on failure
func (a *App) onLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		snap := a.mgr.Snapshot()
		errMsg := snap.Err
		if errMsg == "" {
			errMsg = friendly(msg.err)
		}
		a.loginScreen.SetError(errMsg)
		return a, a.loginScreen.Init()
	}

	a.screen = ScreenList
	return a, tea.Batch(a.list.Init(), a.loadHome())
}

// onLoggedOut returns to a fresh login screen
func (a *App) onLoggedOut(msg loggedOutMsg) (tea.Model, tea.Cmd) {
	a.loginScreen = login.New()
	a.list = productlist.New()
	a.list.SetSize(a.width, a.height)
	a.detail = nil
	a.screen = ScreenLogin

	if msg.err != nil {
		a.loginScreen.SetError(a.mgr.Snapshot().Err)
	}
	return a, a.loginScreen.Init()
}

// View implements tea.Model
func (a *App) View() string {
	var sb strings.Builder
	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")

	switch a.screen {
	case ScreenLogin:
		sb.WriteString(a.loginScreen.View())
	case ScreenList:
		sb.WriteString(a.list.View())
	case ScreenDetail:
		if a.detail != nil {
			sb.WriteString(a.detail.View())
		}
	}
	return sb.String()
}

// renderHeader shows the app name and logged-in user
func (a *App) renderHeader() string {
	header := "storefront"
	if snap := a.mgr.Snapshot(); snap.Authenticated && snap.User != nil {
		header = fmt.Sprintf("storefront — %s", snap.User.Username)
	}
	return styles.Subtitle.Render(header)
}

// restoreSession creates a command that restores the persisted session
func (a *App) restoreSession() tea.Cmd {
	return func() tea.Msg {
		err := a.mgr.Restore()
		return sessionRestoredMsg{err: err}
	}
}

// doLogin creates a command that runs a login attempt
func (a *App) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		err := a.mgr.Login(context.Background(), username, password)
		return loginResultMsg{err: err}
	}
}

// doLogout creates a command that clears the session
func (a *App) doLogout() tea.Cmd {
	return func() tea.Msg {
		err := a.mgr.Logout()
		return loggedOutMsg{err: err}
	}
}

// loadHome fetches the first page and the categories concurrently
func (a *App) loadHome() tea.Cmd {
	return func() tea.Msg {
		page, categories, err := a.browser.Home(context.Background())
		return homeLoadedMsg{page: page, categories: categories, err: err}
	}
}

// loadPage fetches one listing page
func (a *App) loadPage(limit, skip int) tea.Cmd {
	return func() tea.Msg {
		page, err := a.browser.List(context.Background(), limit, skip)
		return pageLoadedMsg{page: page, err: err}
	}
}

// loadSearch runs a search, falling back to the listing on empty queries
func (a *App) loadSearch(query string) tea.Cmd {
	return func() tea.Msg {
		page, err := a.browser.Search(context.Background(), query)
		return pageLoadedMsg{page: page, err: err}
	}
}

// loadCategory fetches one category, or the full listing for ""
func (a *App) loadCategory(category string) tea.Cmd {
	return func() tea.Msg {
		if category == "" {
			page, err := a.browser.List(context.Background(), catalog.DefaultLimit, 0)
			return pageLoadedMsg{page: page, err: err}
		}
		page, err := a.browser.ByCategory(context.Background(), category)
		return pageLoadedMsg{page: page, err: err}
	}
}

// loadDetail fetches one product's detail
func (a *App) loadDetail(id int) tea.Cmd {
	return func() tea.Msg {
		product, err := a.browser.Detail(context.Background(), id)
		return detailLoadedMsg{product: product, err: err}
	}
}

// friendly renders an error as a displayable message
func friendly(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Run starts the TUI
func Run(mgr *session.Manager, browser *catalog.Browser, log zerolog.Logger) error {
	app := New(mgr, browser, log)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
