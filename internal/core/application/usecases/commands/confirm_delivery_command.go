package commands

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand records that the goods reached their destination.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	confirmer kernel.Address

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(orderID kernel.UUID, confirmer kernel.Address) (ConfirmDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), confirmer.Validate()); err != nil {
		return ConfirmDeliveryCommand{}, invalidRequest(err)
	}

	return ConfirmDeliveryCommand{
		orderID:   orderID,
		confirmer: confirmer,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() kernel.UUID      { return c.orderID }
func (c ConfirmDeliveryCommand) Confirmer() kernel.Address { return c.confirmer }
