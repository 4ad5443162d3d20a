package queries

import (
	"context"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
)

type ListOrdersByPartyQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListOrdersByPartyQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrdersByPartyQueryHandler {
	return ListOrdersByPartyQueryHandler{uowFactory: uowFactory}
}

func (h ListOrdersByPartyQueryHandler) Handle(ctx context.Context, query ListOrdersByPartyQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.uowFactory.Create().OrderRepository().ListByParty(ctx, query.Party())
	if err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(orders))
	for _, o := range orders {
		snapshots = append(snapshots, o.Snapshot())
	}
	return snapshots, nil
}
