package queries

import (
	"context"

	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
)

type GetAccountQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetAccountQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAccountQueryHandler {
	return GetAccountQueryHandler{uowFactory: uowFactory}
}

func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (GetAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountQueryResponse{}, err
	}

	acc, err := h.uowFactory.Create().AccountRepository().Get(ctx, query.Address())
	if err != nil {
		return GetAccountQueryResponse{}, err
	}
	return GetAccountQueryResponse{Address: acc.Address(), Balance: acc.Balance()}, nil
}
