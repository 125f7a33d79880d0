package commands

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/internal/core/ports"
)

// Event payloads published to the broker after successful commits.
type (
	// ProductEvent announces a product lifecycle change.
	ProductEvent struct {
		Type      string `json:"type"`
		ProductID int64  `json:"product_id"`
	}

	// OrderEvent announces an order lifecycle change.
	OrderEvent struct {
		Type    string  `json:"type"`
		OrderID int64   `json:"order_id"`
		Status  string  `json:"status,omitempty"`
		Amount  float64 `json:"amount,omitempty"`
	}

	// UserEvent announces a user account change.
	UserEvent struct {
		Type   string `json:"type"`
		UserID int64  `json:"user_id"`
	}
)

// publishEvent sends one event best-effort. A nil publisher disables
// eventing; a publish failure is logged and swallowed because the
// transaction has already committed.
func publishEvent(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	topic string,
	entityID int64,
	event any,
) {
	if publisher == nil {
		return
	}
	key := strconv.FormatInt(entityID, 10)
	if err := publisher.Publish(ctx, topic, key, event); err != nil {
		logger.ErrorContext(ctx, "event publish failed",
			"topic", topic, "key", key, "error", err)
	}
}
