// Package domain defines the core business entities for cotiza.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Service: A purchasable offering with name, unit price and quantity
//   - Notification: A categorised outcome message for the view layer
//   - Preset: A named offering that can be hired with one action
//   - AppSettings: Storage and seed configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, shopspring/decimal for money arithmetic
//   - Cannot Import: Any internal/ package
package domain
