// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/cotiza/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCatalog is the service table.
	ViewCatalog ViewType = iota
	// ViewAddService is the add-service form.
	ViewAddService
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewAddService:
		return "add_service"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ServicesLoaded carries the current collection.
type ServicesLoaded struct {
	Services []domain.Service
	Err      error
}

// CatalogChanged signals that a mutation finished and the table must be
// reloaded.
type CatalogChanged struct {
	Err error
}

// ServiceAdded signals the add form was submitted.
type ServiceAdded struct {
	Err error
}

// NotificationReceived carries a notification published by the core.
type NotificationReceived struct {
	Notification domain.Notification
}

// Quit signals the application should exit.
type Quit struct{}
