package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

func TestDefaultTheme_LevelColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	colours := []lipgloss.Color{theme.Primary, theme.Info, theme.Success, theme.Danger}
	seen := make(map[string]bool)
	for _, c := range colours {
		assert.NotEmpty(t, string(c))
		assert.False(t, seen[string(c)], "duplicate colour: %s", c)
		seen[string(c)] = true
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestStyles_ForLevel(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, s.Theme().Info, s.ForLevel(domain.LevelInfo).GetForeground())
	assert.Equal(t, s.Theme().Success, s.ForLevel(domain.LevelSuccess).GetForeground())
	assert.Equal(t, s.Theme().Danger, s.ForLevel(domain.LevelDanger).GetForeground())
	assert.Equal(t, s.Theme().Foreground, s.ForLevel(domain.Level("other")).GetForeground())
}

func TestStyles_Notification(t *testing.T) {
	s := DefaultStyles()

	out := s.Notification(domain.Success("Service added successfully"))

	assert.Contains(t, out, "[success] Service added successfully")
}
