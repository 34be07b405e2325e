// Package changefeed streams committed entity changes out of Postgres using
// LISTEN/NOTIFY. The unit of work queues a pg_notify per modified aggregate kind
// inside its transaction, so subscribers only ever observe committed work.
package changefeed

import (
	"context"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"fleetflow/internal/core/ports"
)

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = 30 * time.Second
	pingInterval         = 90 * time.Second
)

// Listener implements ports.ChangeFeed over a dedicated Postgres connection.
// lib/pq maintains the connection and reconnects with backoff; after a
// reconnect Postgres replays nothing, so consumers must treat the feed as a
// cache-invalidation hint, not a complete event log.
type Listener struct {
	dsn    string
	logger *slog.Logger
}

// NewListener creates a change-feed listener for the given Postgres DSN.
func NewListener(dsn string, logger *slog.Logger) *Listener {
	return &Listener{
		dsn:    dsn,
		logger: logger,
	}
}

// Subscribe opens the LISTEN connection and returns a channel of change events.
// The channel is closed when the context is cancelled.
func (l *Listener) Subscribe(ctx context.Context) (<-chan ports.ChangeEvent, error) {
	pqListener := pq.NewListener(l.dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				l.logger.Error("change feed listener event", "event", int(event), "error", err)
			}
		})

	if err := pqListener.Listen(ports.ChangeChannel); err != nil {
		_ = pqListener.Close()
		return nil, err
	}

	events := make(chan ports.ChangeEvent)
	go l.pump(ctx, pqListener, events)

	return events, nil
}

func (l *Listener) pump(ctx context.Context, pqListener *pq.Listener, events chan<- ports.ChangeEvent) {
	defer close(events)
	defer func() {
		_ = pqListener.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-pqListener.Notify:
			if !ok {
				return
			}
			if notification == nil {
				// lib/pq sends nil after a reconnect; events may have been
				// missed, so surface a wildcard invalidation
				l.logger.Warn("change feed reconnected, possible missed events")
				select {
				case events <- ports.ChangeEvent{Kind: "unknown"}:
				case <-ctx.Done():
					return
				}
				continue
			}
			select {
			case events <- ports.ChangeEvent{Kind: notification.Extra}:
			case <-ctx.Done():
				return
			}
		case <-time.After(pingInterval):
			go func() {
				if err := pqListener.Ping(); err != nil {
					l.logger.Error("change feed ping failed", "error", err)
				}
			}()
		}
	}
}
