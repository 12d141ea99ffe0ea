package driving

import "github.com/custodia-labs/cotiza/internal/core/domain"

// NotificationFeed lets driving adapters observe notifications raised by
// the core services.
type NotificationFeed interface {
	// Subscribe registers handler and returns a function that removes it.
	Subscribe(handler func(domain.Notification)) (unsubscribe func())
}
