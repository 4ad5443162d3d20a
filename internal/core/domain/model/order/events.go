package order

import (
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
)

// EventType names a committed order transition on the event stream.
type EventType string

const (
	EventCreated           EventType = "order.created"
	EventAgreed            EventType = "order.agreed"
	EventDeliveryConfirmed EventType = "order.delivery_confirmed"
	EventFinalized         EventType = "order.finalized"
)

// Event is recorded by the aggregate on every successful transition and
// carries the state of the order right after it.
type Event struct {
	ID         kernel.UUID    `json:"id"`
	Type       EventType      `json:"type"`
	OrderID    kernel.UUID    `json:"orderId"`
	Actor      kernel.Address `json:"actor"`
	Role       *Role          `json:"role,omitempty"`
	Order      Snapshot       `json:"order"`
	OccurredAt time.Time      `json:"occurredAt"`
}
