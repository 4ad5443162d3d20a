// Package outbox holds domain events waiting to be published. Messages are
// stored in the same transaction as the aggregate change that raised them and
// relayed to the broker afterwards, so a committed transition is never lost
// and a rolled back one is never announced.
package outbox

import (
	"encoding/json"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

// Message is one pending or processed outbox entry.
type Message struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
	ProcessedAt *time.Time
	Attempts    int
}

// FromOrderEvent serializes an order event into an outbox message.
func FromOrderEvent(e order.Event) (Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return Message{}, errs.NewValueIsInvalidErrorWithCause("event", err)
	}
	return Message{
		ID:          e.ID,
		AggregateID: e.OrderID,
		EventType:   string(e.Type),
		Payload:     payload,
		OccurredAt:  e.OccurredAt,
	}, nil
}

// IsProcessed reports whether the message was published.
func (m Message) IsProcessed() bool {
	return m.ProcessedAt != nil
}
