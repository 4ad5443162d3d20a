package commands

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDepositFundsCommandIsNotConstructed = errors.New(
	"DepositFundsCommand must be created via NewDepositFundsCommand constructor",
)

// DepositFundsCommand credits externally funded value to a party's balance.
type DepositFundsCommand struct { //nolint:recvcheck //using for validation
	address kernel.Address
	amount  kernel.Amount

	guard guard.ConstructorGuard
}

func NewDepositFundsCommand(address kernel.Address, amount decimal.Decimal) (DepositFundsCommand, error) {
	if err := address.Validate(); err != nil {
		return DepositFundsCommand{}, invalidRequest(err)
	}

	a, err := toAmount("amount", amount)
	if err != nil {
		return DepositFundsCommand{}, err
	}

	return DepositFundsCommand{
		address: address,
		amount:  a,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DepositFundsCommand) Validate() error {
	return c.guard.Validate(ErrDepositFundsCommandIsNotConstructed)
}

func (c DepositFundsCommand) Address() kernel.Address { return c.address }
func (c DepositFundsCommand) Amount() kernel.Amount   { return c.amount }
