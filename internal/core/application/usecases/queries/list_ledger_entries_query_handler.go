package queries

import (
	"context"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
)

type ListLedgerEntriesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListLedgerEntriesQueryHandler(uowFactory ports.UnitOfWorkFactory) ListLedgerEntriesQueryHandler {
	return ListLedgerEntriesQueryHandler{uowFactory: uowFactory}
}

// Handle fails with kernel.ErrOrderNotFound for unknown orders rather than
// returning an empty list.
func (h ListLedgerEntriesQueryHandler) Handle(ctx context.Context, query ListLedgerEntriesQuery) ([]ledger.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if _, err := uow.OrderRepository().Get(ctx, query.OrderID()); err != nil {
		return nil, notFoundAsKind(err)
	}
	return uow.LedgerRepository().ListByOrder(ctx, query.OrderID())
}
