package commands

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
)

// ConfirmDeliveryCommandHandler lets the sender confirm delivery of a fully
// agreed order. A confirmation by anyone else fails with
// kernel.ErrUnauthorized and leaves the order unchanged.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := lockOrder(ctx, orders, cmd.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = o.ConfirmDelivery(cmd.Confirmer(), time.Now()); err != nil {
		return order.Snapshot{}, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, err
	}

	return o.Snapshot(), nil
}
