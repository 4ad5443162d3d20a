// Package commands contains the escrow operations that change state. Every
// handler validates its command, runs inside one unit of work and commits
// only if all writes succeeded; a deferred Rollback releases row locks on
// every other path.
package commands

import (
	"context"
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW is used by transitions that move no funds: agree and
	// confirm delivery.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// EscrowUoW is used by transitions that move funds between an account and
	// an order's escrow: create and finalize.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, _ := uow.OrderRepository().GetForUpdate(ctx, id)
	//   acc, _ := uow.AccountRepository().Acquire(ctx, *o.Carrier())
	//   // ... change both, append the ledger entry
	//
	//   err = uow.Commit(ctx)
	EscrowUoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
		LedgerRepoFactory
	}

	EscrowUoWFactory interface {
		Create() EscrowUoW
	}

	// AccountUoW is used by deposits.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
		LedgerRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// OutboxUoW is used by the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)

// lockOrder loads an order under a row lock and reports unknown ids as
// kernel.ErrOrderNotFound.
func lockOrder(ctx context.Context, repo ports.OrderRepository, id kernel.UUID) (*order.Order, error) {
	o, err := repo.GetForUpdate(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, kernel.NewKindError(kernel.KindOrderNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// duplicateOrder reports a taken order id as kernel.ErrInvalidRequest.
func duplicateOrder(err error) error {
	if errors.Is(err, errs.ErrObjectExists) {
		return kernel.NewKindError(kernel.KindInvalidRequest, err)
	}
	return err
}

// invalidRequest tags command validation failures.
func invalidRequest(err error) error {
	if err == nil {
		return nil
	}
	return kernel.NewKindError(kernel.KindInvalidRequest, err)
}

// toAmount converts a submitted decimal, reporting negative or over-precise
// values as kernel.ErrInvalidAmount.
func toAmount(name string, d decimal.Decimal) (kernel.Amount, error) {
	a, err := kernel.NewAmount(d)
	if err != nil {
		return kernel.Amount{}, kernel.NewKindError(kernel.KindInvalidAmount,
			errs.NewValueIsInvalidErrorWithCause(name, err))
	}
	return a, nil
}
