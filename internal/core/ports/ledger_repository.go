package ports

import (
	"context"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"
)

// LedgerRepository is the append-only store of custody movements.
type LedgerRepository interface {
	Append(ctx context.Context, entry ledger.Entry) error

	// ListByOrder returns the entries of one order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]ledger.Entry, error)

	// Totals sums all entries by kind.
	Totals(ctx context.Context) (ledger.Totals, error)
}
