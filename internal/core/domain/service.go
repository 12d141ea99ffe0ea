package domain

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Service is one purchasable offering in the catalogue.
// It has no identity of its own: a Service is identified by its
// position in the owning collection, and duplicates are allowed.
type Service struct {
	// Name is the display name of the offering.
	Name string

	// UnitPrice is the price of a single unit.
	UnitPrice float64

	// Quantity is the number of units hired.
	Quantity int
}

// NewService creates a Service value.
func NewService(name string, unitPrice float64, quantity int) Service {
	return Service{Name: name, UnitPrice: unitPrice, Quantity: quantity}
}

// DefaultService is the entry a fresh catalogue starts with.
func DefaultService() Service {
	return NewService("Página web", 2900, 1)
}

// Subtotal returns unit price times quantity. It is never stored.
func Subtotal(s Service) float64 {
	return subtotal(s).InexactFloat64()
}

// Total returns the sum of subtotals over services, or 0 when empty.
// The sum is accumulated in decimal so repeated fractional prices
// do not drift.
func Total(services []Service) float64 {
	sum := decimal.Zero
	for _, s := range services {
		sum = sum.Add(subtotal(s))
	}
	return sum.InexactFloat64()
}

// FormatAmount renders an amount without trailing zeros ("2920", "12.5").
// Non-finite amounts, which a subtotal can reach by overflow, render as
// "+Inf", "-Inf" or "NaN".
func FormatAmount(amount float64) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return strconv.FormatFloat(amount, 'g', -1, 64)
	}
	return decimal.NewFromFloat(amount).String()
}

func subtotal(s Service) decimal.Decimal {
	return decimal.NewFromFloat(s.UnitPrice).Mul(decimal.NewFromInt(int64(s.Quantity)))
}
