package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

func TestParseServiceInput_Valid(t *testing.T) {
	s, err := ParseServiceInput("  Página web ", " 2900 ", "1")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultService(), s)
}

func TestParseServiceInput_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    [3]string
		contains string
	}{
		{name: "empty name", input: [3]string{"", "1", "1"}, contains: "name"},
		{name: "blank name", input: [3]string{"   ", "1", "1"}, contains: "name"},
		{name: "non-numeric price", input: [3]string{"X", "abc", "1"}, contains: "price"},
		{name: "empty price", input: [3]string{"X", "", "1"}, contains: "price"},
		{name: "NaN price", input: [3]string{"X", "NaN", "1"}, contains: "price"},
		{name: "infinite price", input: [3]string{"X", "Inf", "1"}, contains: "price"},
		{name: "non-integer quantity", input: [3]string{"X", "1", "1.5"}, contains: "quantity"},
		{name: "empty quantity", input: [3]string{"X", "1", ""}, contains: "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseServiceInput(tt.input[0], tt.input[1], tt.input[2])
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParseServiceInput_NegativeValuesAllowed(t *testing.T) {
	s, err := ParseServiceInput("Refund", "-10", "-1")

	require.NoError(t, err)
	assert.Equal(t, domain.NewService("Refund", -10, -1), s)
}
