// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Quit key.Binding
	Up   key.Binding
	Down key.Binding

	// Add opens the add-service form.
	Add key.Binding

	// Remove deletes the selected row.
	Remove key.Binding

	Total key.Binding
	Seed  key.Binding

	// HireWeb and HireShop hire the two presets.
	HireWeb  key.Binding
	HireShop key.Binding

	// Form navigation.
	Next   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		Total: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "total"),
		),
		Seed: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "seed"),
		),
		HireWeb: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "hire web"),
		),
		HireShop: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "hire shop"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// CatalogHelp returns the bindings shown under the table.
func (k *KeyMap) CatalogHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Total, k.Seed, k.HireWeb, k.HireShop, k.Quit}
}

// FormHelp returns the bindings shown under the add form.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Cancel}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
