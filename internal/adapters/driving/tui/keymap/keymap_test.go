package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_CatalogKeys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key     string
		binding string
		match   bool
	}{
		{"a", "add", Matches("a", km.Add)},
		{"d", "remove", Matches("d", km.Remove)},
		{"t", "total", Matches("t", km.Total)},
		{"s", "seed", Matches("s", km.Seed)},
		{"1", "hire web", Matches("1", km.HireWeb)},
		{"2", "hire shop", Matches("2", km.HireShop)},
		{"q", "quit", Matches("q", km.Quit)},
		{"ctrl+c", "quit", Matches("ctrl+c", km.Quit)},
	}

	for _, tt := range tests {
		assert.True(t, tt.match, "%s should trigger %s", tt.key, tt.binding)
	}
}

func TestMatches_NoMatch(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Add))
	assert.False(t, Matches("", km.Quit))
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.CatalogHelp(), 7)
	assert.Len(t, km.FormHelp(), 3)
	for _, b := range km.CatalogHelp() {
		assert.NotEmpty(t, b.Help().Desc)
	}
}
