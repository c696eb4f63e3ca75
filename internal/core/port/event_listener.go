package port

import "context"

// EventListenerPort is implemented by incoming adapters that feed the core
// from a message broker.
type EventListenerPort interface {
	Start(ctx context.Context) error
	Close() error
}
