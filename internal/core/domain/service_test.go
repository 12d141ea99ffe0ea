package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultService(t *testing.T) {
	s := DefaultService()

	assert.Equal(t, "Página web", s.Name)
	assert.Equal(t, 2900.0, s.UnitPrice)
	assert.Equal(t, 1, s.Quantity)
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		service  Service
		expected float64
	}{
		{"single unit", NewService("a", 2900, 1), 2900},
		{"several units", NewService("b", 10, 2), 20},
		{"zero quantity", NewService("c", 99.5, 0), 0},
		{"fractional price", NewService("d", 0.1, 3), 0.3},
		{"negative quantity is not rejected", NewService("e", 5, -2), -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Subtotal(tt.service))
		})
	}
}

func TestTotal(t *testing.T) {
	t.Run("empty collection is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Total(nil))
		assert.Equal(t, 0.0, Total([]Service{}))
	})

	t.Run("sums subtotals", func(t *testing.T) {
		services := []Service{
			DefaultService(),
			NewService("X", 10, 2),
			NewService("Tienda Online", 4500, 1),
		}
		assert.Equal(t, 7420.0, Total(services))
	})

	t.Run("fractional prices do not drift", func(t *testing.T) {
		services := []Service{
			NewService("a", 0.1, 1),
			NewService("b", 0.2, 1),
		}
		assert.Equal(t, 0.3, Total(services))
	})

	t.Run("duplicates count twice", func(t *testing.T) {
		services := []Service{DefaultService(), DefaultService()}
		assert.Equal(t, 5800.0, Total(services))
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2920", FormatAmount(2920))
	assert.Equal(t, "12.5", FormatAmount(12.5))
	assert.Equal(t, "0", FormatAmount(0))
}

func TestFormatAmount_NonFinite(t *testing.T) {
	assert.Equal(t, "+Inf", FormatAmount(math.Inf(1)))
	assert.Equal(t, "-Inf", FormatAmount(math.Inf(-1)))
	assert.Equal(t, "NaN", FormatAmount(math.NaN()))
}

func TestTotal_OverflowDoesNotPanic(t *testing.T) {
	services := []Service{NewService("a", 1e308, 1_000_000)}

	assert.NotPanics(t, func() {
		FormatAmount(Total(services))
	})
}
