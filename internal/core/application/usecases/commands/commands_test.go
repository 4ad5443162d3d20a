package commands_test

import (
	"testing"

	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/commands"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(id, senderAddr, mustDecimal(t, "100"), mustDecimal(t, "10.5"), &carrierAddr)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, senderAddr, cmd.Sender())
		assert.Equal(t, "100", cmd.GoodsValue().String())
		assert.Equal(t, "10.5", cmd.ServiceFee().String())
		assert.Equal(t, &carrierAddr, cmd.Carrier())
	})

	t.Run("zero amounts pass construction", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), senderAddr, decimal.Zero, decimal.Zero, nil)

		require.NoError(t, err)
	})

	tests := []struct {
		name   string
		id     kernel.UUID
		sender kernel.Address
		goods  string
		fee    string
		kind   kernel.ErrorKind
	}{
		{"negative goods value", kernel.NewUUID(), senderAddr, "-1", "0", kernel.KindInvalidAmount},
		{"negative service fee", kernel.NewUUID(), senderAddr, "1", "-0.01", kernel.KindInvalidAmount},
		{"goods value past numeric(38,8)", kernel.NewUUID(), senderAddr, "1e30", "0", kernel.KindInvalidAmount},
		{"missing sender", kernel.NewUUID(), kernel.Address{}, "1", "1", kernel.KindInvalidRequest},
		{"missing id", kernel.UUID{}, senderAddr, "1", "1", kernel.KindInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tt.id, tt.sender, mustDecimal(t, tt.goods), mustDecimal(t, tt.fee), nil)

			kind, ok := kernel.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestNewAgreeOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewAgreeOrderCommand(id, carrierAddr, order.Carrier)
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, carrierAddr, cmd.Caller())
	assert.Equal(t, order.Carrier, cmd.Role())

	_, err = commands.NewAgreeOrderCommand(id, carrierAddr, order.Role(7))
	require.ErrorIs(t, err, kernel.ErrInvalidRequest)

	require.ErrorIs(t, commands.AgreeOrderCommand{}.Validate(), commands.ErrAgreeOrderCommandIsNotConstructed)
}

func TestNewConfirmDeliveryCommand(t *testing.T) {
	cmd, err := commands.NewConfirmDeliveryCommand(kernel.NewUUID(), senderAddr)
	require.NoError(t, err)
	assert.Equal(t, senderAddr, cmd.Confirmer())

	_, err = commands.NewConfirmDeliveryCommand(kernel.NewUUID(), kernel.Address{})
	require.ErrorIs(t, err, kernel.ErrInvalidRequest)
}

func TestNewFinalizeOrderCommand(t *testing.T) {
	cmd, err := commands.NewFinalizeOrderCommand(kernel.NewUUID(), carrierAddr)
	require.NoError(t, err)
	assert.Equal(t, carrierAddr, cmd.Caller())

	_, err = commands.NewFinalizeOrderCommand(kernel.UUID{}, carrierAddr)
	require.ErrorIs(t, err, kernel.ErrInvalidRequest)
}

func TestNewDepositFundsCommand(t *testing.T) {
	cmd, err := commands.NewDepositFundsCommand(senderAddr, mustDecimal(t, "0.00000001"))
	require.NoError(t, err)
	assert.Equal(t, "0.00000001", cmd.Amount().String())

	_, err = commands.NewDepositFundsCommand(senderAddr, mustDecimal(t, "-5"))
	require.ErrorIs(t, err, kernel.ErrInvalidAmount)
}
