package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationConstructors(t *testing.T) {
	tests := []struct {
		name     string
		got      Notification
		expected Level
	}{
		{"info", Info("total"), LevelInfo},
		{"success", Success("added"), LevelSuccess},
		{"danger", Danger("failed"), LevelDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got.Level)
			assert.NotEmpty(t, tt.got.Message)
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "danger", LevelDanger.String())
}
