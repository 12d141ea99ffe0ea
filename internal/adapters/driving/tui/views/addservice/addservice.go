// Package addservice provides the add-service form view for the TUI.
package addservice

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cotiza/internal/core/ports/driving"
)

// View is the add-service form.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	catalog driving.CatalogService
	form    *input.ServiceForm

	submitting bool
	err        error
	width      int
	height     int
}

// NewView creates a new add-service view.
func NewView(s *styles.Styles, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:     context.Background(),
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		catalog: catalog,
		form:    input.NewServiceForm(s),
	}
}

// SetContext sets the context used by service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init starts the cursor blink.
func (v *View) Init() tea.Cmd {
	return v.form.Init()
}

// Reset clears the form for a new entry.
func (v *View) Reset() {
	v.form.Reset()
	v.err = nil
	v.submitting = false
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ServiceAdded:
		v.submitting = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewCatalog}
		}
	case "tab", "down":
		return v, v.form.Next()
	case "shift+tab", "up":
		return v, v.form.Prev()
	case "enter":
		if v.submitting {
			return v, nil
		}
		v.submitting = true
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.form, cmd = v.form.Update(msg)
	return v, cmd
}

func (v *View) submit() tea.Cmd {
	ctx := v.ctx
	name, price, quantity := v.form.Values()
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.ServiceAdded{Err: errors.New("catalogue service not available")}
		}
		return messages.ServiceAdded{Err: v.catalog.AddInput(ctx, name, price, quantity)}
	}
}

// View renders the form.
func (v *View) View() string {
	parts := []string{
		v.styles.Title.Render("Add service"),
		"",
		v.form.View(),
	}
	if v.err != nil {
		parts = append(parts, "", v.styles.Danger.Render(v.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Form returns the underlying inputs.
func (v *View) Form() *input.ServiceForm {
	return v.form
}

// Err returns the error from the last submit.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
