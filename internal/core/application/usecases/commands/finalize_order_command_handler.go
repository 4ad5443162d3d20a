package commands

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/services"
)

// FinalizeOrderCommandHandler pays a delivered order's escrow to its carrier.
//
// The order row is locked first and checked before the carrier account is
// touched, so a premature or repeated finalize fails without locking any
// account. The order update, the credit and the release ledger entry are
// committed together.
type FinalizeOrderCommandHandler struct {
	uowFactory EscrowUoWFactory
	custody    services.EscrowCustody
}

func NewFinalizeOrderCommandHandler(uowFactory EscrowUoWFactory) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		custody:    services.NewEscrowCustody(),
	}
}

func (h FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) (order.Snapshot, error) {
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

	if err = o.ValidateFinalize(); err != nil {
		return order.Snapshot{}, err
	}

	accounts := uow.AccountRepository()
	carrierAccount, err := accounts.Acquire(ctx, *o.Carrier())
	if err != nil {
		return order.Snapshot{}, err
	}

	release, err := h.custody.Release(o, carrierAccount, cmd.Caller(), time.Now())
	if err != nil {
		return order.Snapshot{}, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return order.Snapshot{}, err
	}
	if err = accounts.Save(ctx, carrierAccount); err != nil {
		return order.Snapshot{}, err
	}
	if err = uow.LedgerRepository().Append(ctx, release); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Snapshot{}, err
	}

	return o.Snapshot(), nil
}
