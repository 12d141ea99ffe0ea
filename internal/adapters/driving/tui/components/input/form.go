// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/styles"
)

// Field indices of the service form.
const (
	FieldName = iota
	FieldPrice
	FieldQuantity
	fieldCount
)

var labels = [fieldCount]string{"Name", "Price", "Quantity"}

// ServiceForm holds the three text inputs of the add-service form.
type ServiceForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	styles *styles.Styles
}

// NewServiceForm creates a form focused on the name field.
func NewServiceForm(s *styles.Styles) *ServiceForm {
	if s == nil {
		s = styles.DefaultStyles()
	}

	f := &ServiceForm{styles: s}
	placeholders := [fieldCount]string{"Página web", "2900", "1"}
	limits := [fieldCount]int{128, 32, 9}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 30
		f.inputs[i] = ti
	}
	f.inputs[FieldName].Focus()
	return f
}

// Init starts the cursor blink.
func (f *ServiceForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the focused input.
func (f *ServiceForm) Update(msg tea.Msg) (*ServiceForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the labelled inputs one per line.
func (f *ServiceForm) View() string {
	rows := make([]string, 0, fieldCount)
	for i := range f.inputs {
		label := f.styles.Muted.Render(labels[i] + ":")
		if i == f.focus {
			label = f.styles.Title.Render(labels[i] + ":")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			lipgloss.NewStyle().Width(10).Render(label),
			f.styles.InputField.Render(f.inputs[i].View()),
		))
	}
	return strings.Join(rows, "\n")
}

// Next moves focus forward, wrapping around.
func (f *ServiceForm) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

// Prev moves focus backward, wrapping around.
func (f *ServiceForm) Prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *ServiceForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Focused returns the index of the focused field.
func (f *ServiceForm) Focused() int {
	return f.focus
}

// Values returns the raw name, price and quantity strings.
func (f *ServiceForm) Values() (name, price, quantity string) {
	return f.inputs[FieldName].Value(), f.inputs[FieldPrice].Value(), f.inputs[FieldQuantity].Value()
}

// SetValues fills the three fields.
func (f *ServiceForm) SetValues(name, price, quantity string) {
	f.inputs[FieldName].SetValue(name)
	f.inputs[FieldPrice].SetValue(price)
	f.inputs[FieldQuantity].SetValue(quantity)
}

// Reset clears every field and focuses the name.
func (f *ServiceForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.setFocus(FieldName)
}
