package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes domain events after a transaction has committed.
// Publication failures are logged and never surface to the caller.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e eventEmitter) emit(ctx context.Context, eventType service.EventType, customerID, addressID int64) {
	if e.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		RequestID:  deliverycontext.RequestID(ctx),
		CustomerID: customerID,
		AddressID:  addressID,
		OccurredAt: time.Now().UTC(),
	}

	if err := e.publisher.PublishDomainEvent(ctx, event); err != nil {
		deliverycontext.Logger(ctx, e.logger).Warn("Failed to publish domain event",
			slog.String("event_type", string(eventType)),
			slog.Int64("customer_id", customerID),
			slog.Any("error", err),
		)
	}
}
