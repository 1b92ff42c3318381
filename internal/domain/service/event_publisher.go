package service

import (
	"context"
	"time"
)

// EventType names a domain event emitted after a committed mutation.
type EventType string

const (
	EventCustomerCreated     EventType = "customer.created"
	EventCustomerUpdated     EventType = "customer.updated"
	EventCustomerActivated   EventType = "customer.activated"
	EventCustomerDeactivated EventType = "customer.deactivated"
	EventCustomerDeleted     EventType = "customer.deleted"
	EventAddressCreated      EventType = "address.created"
	EventAddressUpdated      EventType = "address.updated"
	EventAddressDeleted      EventType = "address.deleted"
)

// DomainEvent describes a committed change to a customer or one of its addresses
type DomainEvent struct {
	EventID    string    `json:"event_id"`
	Type       EventType `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	CustomerID int64     `json:"customer_id"`
	AddressID  int64     `json:"address_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDomainEvent publishes a domain event to downstream consumers
	PublishDomainEvent(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
