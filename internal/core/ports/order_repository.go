// Package ports defines the contracts between the escrow core and its
// infrastructure: repositories bound to a unit of work, the event publisher
// and the idempotency store.
package ports

import (
	"context"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly created order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a transition of an existing order. It fails with
	// errs.VersionIsInvalidError when the stored version is not older than
	// the aggregate's, so a stale copy can never overwrite a newer state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get reads an order without locking it. Returns errs.ObjectNotFoundError
	// for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate reads an order and locks it until the unit of work commits
	// or rolls back. Must be called inside Begin.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByParty returns the orders where party is the sender or the carrier,
	// newest first.
	ListByParty(ctx context.Context, party kernel.Address) ([]*order.Order, error)
}
