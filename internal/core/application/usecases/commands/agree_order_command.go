package commands

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

var ErrAgreeOrderCommandIsNotConstructed = errors.New(
	"AgreeOrderCommand must be created via NewAgreeOrderCommand constructor",
)

// AgreeOrderCommand records that caller signs on to an order in role.
type AgreeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  kernel.Address
	role    order.Role

	guard guard.ConstructorGuard
}

func NewAgreeOrderCommand(orderID kernel.UUID, caller kernel.Address, role order.Role) (AgreeOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), caller.Validate(), role.Validate()); err != nil {
		return AgreeOrderCommand{}, invalidRequest(err)
	}

	return AgreeOrderCommand{
		orderID: orderID,
		caller:  caller,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AgreeOrderCommand) Validate() error {
	return c.guard.Validate(ErrAgreeOrderCommandIsNotConstructed)
}

func (c AgreeOrderCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AgreeOrderCommand) Caller() kernel.Address { return c.caller }
func (c AgreeOrderCommand) Role() order.Role       { return c.role }
