// Package account holds the free balance of a party. Value leaves an account
// into an order's escrow on create and enters an account from escrow on
// finalize or from outside on deposit.
package account

import (
	"errors"
	"fmt"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is keyed by the party address. An account that was never funded
// behaves exactly like a stored account with a zero balance.
type Account struct {
	address kernel.Address
	balance kernel.Amount
	guard   guard.ConstructorGuard
}

// NewAccount returns an empty account.
func NewAccount(address kernel.Address) (*Account, error) {
	return RestoreAccount(address, kernel.ZeroAmount())
}

// RestoreAccount rebuilds a stored account.
func RestoreAccount(address kernel.Address, balance kernel.Amount) (*Account, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}
	return &Account{
		address: address,
		balance: balance,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) Address() kernel.Address { return a.address }
func (a *Account) Balance() kernel.Amount  { return a.balance }

// Debit takes amount from the free balance.
func (a *Account) Debit(amount kernel.Amount) error {
	if a.balance.LessThan(amount) {
		return kernel.NewKindErrorf(kernel.KindInsufficientFunds,
			"%s holds %s, needs %s", a.address, a.balance, amount)
	}
	rest, err := a.balance.Sub(amount)
	if err != nil {
		return fmt.Errorf("debit %s: %w", a.address, err)
	}
	a.balance = rest
	return nil
}

// Credit adds amount to the free balance. A balance that would leave the
// amount range is refused with kernel.ErrInvalidAmount.
func (a *Account) Credit(amount kernel.Amount) error {
	sum, err := a.balance.CheckedAdd(amount)
	if err != nil {
		return kernel.NewKindError(kernel.KindInvalidAmount, fmt.Errorf("credit %s: %w", a.address, err))
	}
	a.balance = sum
	return nil
}
