// Package styles provides the colour theme shared by the TUI and the
// CLI notification printer.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

// Theme defines the colour palette.
type Theme struct {
	Primary    lipgloss.Color
	Info       lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
	Border     lipgloss.Color
	StatusBg   lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Info:       lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Danger:     lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"),
		StatusBg:   lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Total      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style

	// Info, Success and Danger colour notifications by level.
	Info    lipgloss.Style
	Success lipgloss.Style
	Danger  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Total: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.StatusBg).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Info: lipgloss.NewStyle().
			Foreground(theme.Info),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Danger: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Danger),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// ForLevel returns the style a notification of level is rendered with.
func (s *Styles) ForLevel(level domain.Level) lipgloss.Style {
	switch level {
	case domain.LevelSuccess:
		return s.Success
	case domain.LevelDanger:
		return s.Danger
	case domain.LevelInfo:
		return s.Info
	default:
		return s.Normal
	}
}

// Notification renders n as a single "[level] message" line.
func (s *Styles) Notification(n domain.Notification) string {
	return s.ForLevel(n.Level).Render("[" + n.Level.String() + "] " + n.Message)
}
