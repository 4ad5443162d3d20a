package queries

import (
	"context"
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return order.Snapshot{}, notFoundAsKind(err)
	}
	return o.Snapshot(), nil
}

// notFoundAsKind reports a missing order as kernel.ErrOrderNotFound.
func notFoundAsKind(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.NewKindError(kernel.KindOrderNotFound, err)
	}
	return err
}
