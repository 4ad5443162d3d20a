package commands

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
)

// AgreeOrderCommandHandler records one party's agreement. No funds move, so
// only the order row is locked. Two agreements for different roles on the
// same order serialize on that lock and both succeed; a repeated role fails
// with kernel.ErrAlreadyAgreed.
type AgreeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAgreeOrderCommandHandler(uowFactory OrderUoWFactory) AgreeOrderCommandHandler {
	return AgreeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AgreeOrderCommandHandler) Handle(ctx context.Context, cmd AgreeOrderCommand) (order.Snapshot, error) {
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

	if err = o.Agree(cmd.Role(), cmd.Caller(), time.Now()); err != nil {
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
