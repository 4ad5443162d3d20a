package commands

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/services"
)

// CreateOrderCommandHandler opens an order and moves its total out of the
// sender's balance into escrow. The debit, the order row and the lock
// ledger entry are committed together.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	snapshot, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, kernel.ErrInsufficientFunds):
//	    // sender cannot cover goodsValue + serviceFee
//	case err != nil:
//	    return err
//	}
type CreateOrderCommandHandler struct {
	uowFactory EscrowUoWFactory
	custody    services.EscrowCustody
}

func NewCreateOrderCommandHandler(uowFactory EscrowUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		custody:    services.NewEscrowCustody(),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.Snapshot, error) {
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

	accounts := uow.AccountRepository()
	senderAccount, err := accounts.Acquire(ctx, cmd.Sender())
	if err != nil {
		return order.Snapshot{}, err
	}

	o, lock, err := h.custody.Open(cmd.OrderID(), senderAccount, cmd.GoodsValue(), cmd.ServiceFee(), cmd.Carrier(), time.Now())
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = accounts.Save(ctx, senderAccount); err != nil {
		return order.Snapshot{}, err
	}
	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return order.Snapshot{}, duplicateOrder(err)
	}
	if err = uow.LedgerRepository().Append(ctx, lock); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, duplicateOrder(err)
	}

	return o.Snapshot(), nil
}
