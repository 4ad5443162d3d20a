package commands

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand releases an order's escrow to its carrier.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  kernel.Address

	guard guard.ConstructorGuard
}

func NewFinalizeOrderCommand(orderID kernel.UUID, caller kernel.Address) (FinalizeOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), caller.Validate()); err != nil {
		return FinalizeOrderCommand{}, invalidRequest(err)
	}

	return FinalizeOrderCommand{
		orderID: orderID,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

func (c FinalizeOrderCommand) OrderID() kernel.UUID   { return c.orderID }
func (c FinalizeOrderCommand) Caller() kernel.Address { return c.caller }
