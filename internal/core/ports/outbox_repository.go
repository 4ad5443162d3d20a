package ports

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"
)

// OutboxRepository reads and acknowledges messages written by the unit of
// work on commit.
type OutboxRepository interface {
	// GetPending returns up to limit unprocessed messages, oldest first. Inside
	// a transaction the rows are locked and rows locked by another relay are
	// skipped.
	GetPending(ctx context.Context, limit int) ([]outbox.Message, error)

	MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error

	// MarkFailed counts a failed publish attempt.
	MarkFailed(ctx context.Context, id kernel.UUID) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...outbox.Message) error
}
