// ABOUTME: Login screen as a bubbletea model wrapping a huh form
// ABOUTME: Emits SubmitMsg with the entered credentials

package login

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mstore/storefront/internal/tui/styles"
)

// SubmitMsg is sent when the form completes with both fields filled.
type SubmitMsg struct {
	Username string
	Password string
}

// Login is the credential entry screen.
type Login struct {
	form     *huh.Form
	username string
	password string
	errMsg   string
	busy     bool
	width    int
}

// New creates a fresh login screen.
func New() *Login {
	l := &Login{}
	l.form = l.newForm()
	return l
}

func (l *Login) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&l.username).
				Validate(notBlank),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password).
				Validate(notBlank),
		),
	).WithShowHelp(false)
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// SetError shows a failure message and re-arms the form for another try.
func (l *Login) SetError(msg string) {
	l.errMsg = msg
	l.busy = false
	l.password = ""
	l.form = l.newForm()
}

// SetBusy marks a login attempt in flight so the form stops accepting input.
func (l *Login) SetBusy() {
	l.busy = true
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		l.width = ws.Width
	}
	if l.busy {
		return l, nil
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		l.busy = true
		username, password := l.username, l.password
		return l, func() tea.Msg {
			return SubmitMsg{Username: username, Password: password}
		}
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Sign in"))
	sb.WriteString("\n")

	if l.busy {
		sb.WriteString(styles.Subtitle.Render("Signing in…"))
	} else {
		sb.WriteString(l.form.View())
	}

	if l.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusError.Render(l.errMsg))
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("enter submit • ctrl+c quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
