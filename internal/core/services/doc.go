// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - CatalogService: the service collection and its persisted mirror
//   - SeedService: one-shot replacement of the catalogue from a seed document
//   - SettingsService: storage and seed configuration
package services
