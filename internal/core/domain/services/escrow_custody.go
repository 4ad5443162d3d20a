package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/account"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

// ErrAccountMismatch is returned when the account handed to EscrowCustody does
// not belong to the party the order names.
var ErrAccountMismatch = errors.New("account does not belong to the order party")

// EscrowCustody moves value between party accounts and order escrow. Each
// method changes both sides together and returns the ledger entry that
// records the movement, so callers persist all three in one unit of work.
//
// Business rules:
//   - an order is opened only if the sender can cover goodsValue + serviceFee
//   - escrow leaves an order only on finalize and only to its carrier
//   - deposits are the only way value enters the system
//
// Example usage:
//
//	custody := services.NewEscrowCustody()
//	o, lock, err := custody.Open(orderID, senderAccount, goods, fee, nil, now)
//	if err != nil {
//	    return err // kernel.ErrInvalidAmount or kernel.ErrInsufficientFunds
//	}
type EscrowCustody struct{}

func NewEscrowCustody() EscrowCustody {
	return EscrowCustody{}
}

// Open creates an order for the owner of senderAccount and debits the total
// from that account. Amount validation runs before the balance check.
func (EscrowCustody) Open(
	id kernel.UUID,
	senderAccount *account.Account,
	goodsValue, serviceFee kernel.Amount,
	carrier *kernel.Address,
	now time.Time,
) (*order.Order, ledger.Entry, error) {
	if err := senderAccount.Validate(); err != nil {
		return nil, ledger.Entry{}, err
	}

	o, err := order.NewOrder(id, senderAccount.Address(), goodsValue, serviceFee, carrier, now)
	if err != nil {
		return nil, ledger.Entry{}, err
	}

	if err = senderAccount.Debit(o.EscrowedAmount()); err != nil {
		return nil, ledger.Entry{}, err
	}

	return o, ledger.NewLock(o.ID(), o.Sender(), o.EscrowedAmount(), now), nil
}

// Release finalizes o and credits the released escrow to carrierAccount,
// which must be the account of the order's carrier.
func (EscrowCustody) Release(
	o *order.Order,
	carrierAccount *account.Account,
	caller kernel.Address,
	now time.Time,
) (ledger.Entry, error) {
	if err := errors.Join(o.Validate(), carrierAccount.Validate()); err != nil {
		return ledger.Entry{}, err
	}

	if err := o.ValidateFinalize(); err != nil {
		return ledger.Entry{}, err
	}

	if c := o.Carrier(); c == nil || !c.IsEqual(carrierAccount.Address()) {
		return ledger.Entry{}, fmt.Errorf("release order %s to %s: %w", o.ID(), carrierAccount.Address(), ErrAccountMismatch)
	}

	released, err := o.Finalize(caller, now)
	if err != nil {
		return ledger.Entry{}, err
	}
	if err = carrierAccount.Credit(released); err != nil {
		return ledger.Entry{}, err
	}

	return ledger.NewRelease(o.ID(), carrierAccount.Address(), released, now), nil
}

// Deposit credits external funds to acc.
func (EscrowCustody) Deposit(acc *account.Account, amount kernel.Amount, now time.Time) (ledger.Entry, error) {
	if err := acc.Validate(); err != nil {
		return ledger.Entry{}, err
	}
	if amount.IsZero() {
		return ledger.Entry{}, kernel.NewKindError(kernel.KindInvalidAmount, errs.NewValueIsRequiredError("amount"))
	}

	if err := acc.Credit(amount); err != nil {
		return ledger.Entry{}, err
	}
	return ledger.NewDeposit(acc.Address(), amount, now), nil
}
