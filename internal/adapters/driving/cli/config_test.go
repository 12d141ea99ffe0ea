package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

func TestConfigCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, cmd := range configCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "set"}, names)
}

func TestConfigShowCmd_Defaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "backend: sqlite")
	assert.Contains(t, out, "dir: (default)")
	assert.Contains(t, out, "location: ./datos.json")
	assert.Contains(t, out, "on_start: false")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestConfigSetCmd(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "config", "set", "seed.location", "https://example.com/datos.json")

	require.NoError(t, err)
	assert.Contains(t, out, "Set seed.location = https://example.com/datos.json")
	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/datos.json", settings.Seed.Location)
}

func TestConfigSetCmd_Invalid(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "config", "set", "storage.backend", "redis")

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestConfigSetCmd_RequiresTwoArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "config", "set", "seed.location")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}
