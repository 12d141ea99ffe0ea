package driven

import "github.com/custodia-labs/cotiza/internal/core/domain"

// Notifier delivers outcome notifications to whichever view is attached.
type Notifier interface {
	Notify(n domain.Notification)
}
