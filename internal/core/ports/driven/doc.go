// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - KeyValueStore: Persisted mirror of the catalogue (sqlite, file, memory)
//   - ConfigStore: Application configuration
//   - Notifier: Delivery of outcome notifications to the view layer
//
// # Optional Interfaces
//
//   - SeedSource: Remote seed document. Without it, seed loading reports
//     ErrSeedUnavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
