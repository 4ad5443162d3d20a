package queries

import (
	"context"

	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
)

type GetCustodySummaryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetCustodySummaryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustodySummaryQueryHandler {
	return GetCustodySummaryQueryHandler{uowFactory: uowFactory}
}

// Handle fails when the ledger released more than it locked.
func (h GetCustodySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetCustodySummaryQuery,
) (GetCustodySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustodySummaryQueryResponse{}, err
	}

	totals, err := h.uowFactory.Create().LedgerRepository().Totals(ctx)
	if err != nil {
		return GetCustodySummaryQueryResponse{}, err
	}

	escrowed, err := totals.Escrowed()
	if err != nil {
		return GetCustodySummaryQueryResponse{}, err
	}

	return GetCustodySummaryQueryResponse{
		Locked:    totals.Locked,
		Released:  totals.Released,
		Escrowed:  escrowed,
		Deposited: totals.Deposited,
	}, nil
}
