package commands

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/services"
)

// DepositFundsCommandHandler credits a deposit and returns the new balance.
type DepositFundsCommandHandler struct {
	uowFactory AccountUoWFactory
	custody    services.EscrowCustody
}

func NewDepositFundsCommandHandler(uowFactory AccountUoWFactory) DepositFundsCommandHandler {
	return DepositFundsCommandHandler{
		uowFactory: uowFactory,
		custody:    services.NewEscrowCustody(),
	}
}

func (h DepositFundsCommandHandler) Handle(ctx context.Context, cmd DepositFundsCommand) (kernel.Amount, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Amount{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Amount{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accounts := uow.AccountRepository()
	acc, err := accounts.Acquire(ctx, cmd.Address())
	if err != nil {
		return kernel.Amount{}, err
	}

	deposit, err := h.custody.Deposit(acc, cmd.Amount(), time.Now())
	if err != nil {
		return kernel.Amount{}, err
	}

	if err = accounts.Save(ctx, acc); err != nil {
		return kernel.Amount{}, err
	}
	if err = uow.LedgerRepository().Append(ctx, deposit); err != nil {
		return kernel.Amount{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Amount{}, err
	}

	return acc.Balance(), nil
}
