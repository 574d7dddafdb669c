package scheduling

import "github.com/quicklic/clinic-scheduler/internal/notification"

// Notifier is the fire-and-forget notification queue. Dispatch never
// blocks and never fails the calling operation.
type Notifier interface {
	Dispatch(ev notification.Event)
}
