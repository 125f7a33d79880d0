package ports

import "context"

// Event topics published after successful commits.
const (
	TopicProductEvents = "product_events"
	TopicOrderEvents   = "order_events"
	TopicUserEvents    = "user_events"
)

// EventPublisher delivers domain events to the message broker after a
// transaction commits. Publishing is best-effort: a failed publish is
// logged by the caller and never fails the committed operation.
type EventPublisher interface {
	// Publish sends one JSON-encoded event to the topic, keyed for
	// partition affinity (usually the entity id).
	Publish(ctx context.Context, topic, key string, event any) error

	// Close flushes and releases the underlying connections.
	Close() error
}
