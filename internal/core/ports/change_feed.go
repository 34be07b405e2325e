package ports

import (
	"context"
)

// ChangeChannel is the Postgres notification channel carrying committed entity
// changes. The unit of work publishes on it; feed listeners subscribe to it.
const ChangeChannel = "fleet_changes"

// ChangeEvent describes a committed change to a fleet entity. Kind names the
// entity table that changed.
type ChangeEvent struct {
	Kind string
}

// ChangeFeed streams committed entity changes. Used to invalidate derived state
// such as cached fleet metrics.
type ChangeFeed interface {
	// Subscribe returns a channel of change events. The channel is closed when
	// the context is cancelled or the underlying connection is lost.
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}
