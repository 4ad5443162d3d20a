package commands

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks to open an escrow order funded by sender.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), sender, decimal.NewFromInt(100), decimal.NewFromInt(10), nil)
//	if err != nil {
//	    return err // kernel.ErrInvalidAmount for negative amounts
//	}
//	snapshot, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	sender     kernel.Address
	goodsValue kernel.Amount
	serviceFee kernel.Amount
	carrier    *kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identities and amounts. Negative or
// over-precise amounts fail with kernel.ErrInvalidAmount, bad identities with
// kernel.ErrInvalidRequest. The both-zero rule is enforced by the order itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	sender kernel.Address,
	goodsValue, serviceFee decimal.Decimal,
	carrier *kernel.Address,
) (CreateOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), sender.Validate()); err != nil {
		return CreateOrderCommand{}, invalidRequest(err)
	}
	if carrier != nil {
		if err := carrier.Validate(); err != nil {
			return CreateOrderCommand{}, invalidRequest(err)
		}
	}

	goods, err := toAmount("goodsValue", goodsValue)
	if err != nil {
		return CreateOrderCommand{}, err
	}
	fee, err := toAmount("serviceFee", serviceFee)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:    orderID,
		sender:     sender,
		goodsValue: goods,
		serviceFee: fee,
		carrier:    carrier,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c CreateOrderCommand) Sender() kernel.Address    { return c.sender }
func (c CreateOrderCommand) GoodsValue() kernel.Amount { return c.goodsValue }
func (c CreateOrderCommand) ServiceFee() kernel.Amount { return c.serviceFee }
func (c CreateOrderCommand) Carrier() *kernel.Address  { return c.carrier }
