package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/cotiza/internal/core/domain"
)

// ParseServiceInput validates raw form values and builds a Service.
// The name must be non-empty after trimming, the price must parse as a
// finite number and the quantity as an integer.
func ParseServiceInput(name, price, quantity string) (domain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Service{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return domain.Service{}, fmt.Errorf("%w: price %q is not a number", domain.ErrInvalidInput, price)
	}

	q, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return domain.Service{}, fmt.Errorf("%w: quantity %q is not an integer", domain.ErrInvalidInput, quantity)
	}

	return domain.NewService(name, p, q), nil
}
