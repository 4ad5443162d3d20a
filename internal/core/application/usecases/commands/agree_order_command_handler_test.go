package commands_test

import (
	"testing"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/commands"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createdOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), senderAddr, kernel.MustAmount("100"), kernel.MustAmount("10"), nil, time.Now())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func TestAgreeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := createdOrder(t)
	cmd, err := commands.NewAgreeOrderCommand(o.ID(), carrierAddr, order.Carrier)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAgreeOrderCommandHandler(MockOrderUoWFactory{uow: uow})
	snapshot, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PartiallyAgreed, snapshot.Status)
	assert.True(t, snapshot.CarrierAgreed)
	require.NotNil(t, snapshot.Carrier)
	assert.True(t, snapshot.Carrier.IsEqual(carrierAddr))
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAgreeOrderCommandHandler_Handle_AlreadyAgreed(t *testing.T) {
	ctx := t.Context()
	o := createdOrder(t)
	require.NoError(t, o.Agree(order.Sender, senderAddr, time.Now()))
	version := o.Version()
	cmd, err := commands.NewAgreeOrderCommand(o.ID(), senderAddr, order.Sender)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAgreeOrderCommandHandler(MockOrderUoWFactory{uow: uow})
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, kernel.ErrAlreadyAgreed)
	assert.Equal(t, version, o.Version())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestConfirmDeliveryCommandHandler_Handle(t *testing.T) {
	agreed := func(t *testing.T) *order.Order {
		t.Helper()
		o := createdOrder(t)
		require.NoError(t, o.Agree(order.Carrier, carrierAddr, time.Now()))
		require.NoError(t, o.Agree(order.Sender, senderAddr, time.Now()))
		return o
	}

	t.Run("sender confirms a fully agreed order", func(t *testing.T) {
		ctx := t.Context()
		o := agreed(t)
		cmd, err := commands.NewConfirmDeliveryCommand(o.ID(), senderAddr)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		snapshot, err := commands.NewConfirmDeliveryCommandHandler(MockOrderUoWFactory{uow: uow}).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryConfirmed, snapshot.Status)
		assert.True(t, snapshot.DeliveryConfirmed)
		uow.AssertExpectations(t)
	})

	t.Run("carrier cannot confirm", func(t *testing.T) {
		ctx := t.Context()
		o := agreed(t)
		cmd, err := commands.NewConfirmDeliveryCommand(o.ID(), carrierAddr)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err = commands.NewConfirmDeliveryCommandHandler(MockOrderUoWFactory{uow: uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, kernel.ErrUnauthorized)
		assert.Equal(t, order.FullyAgreed, o.Status())
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("partially agreed order is incomplete", func(t *testing.T) {
		ctx := t.Context()
		o := createdOrder(t)
		require.NoError(t, o.Agree(order.Carrier, carrierAddr, time.Now()))
		cmd, err := commands.NewConfirmDeliveryCommand(o.ID(), senderAddr)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		_, err = commands.NewConfirmDeliveryCommandHandler(MockOrderUoWFactory{uow: uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, kernel.ErrAgreementIncomplete)
	})
}

func TestDepositFundsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDepositFundsCommand(senderAddr, mustDecimal(t, "12.5"))
	require.NoError(t, err)
	acc := fundedAccount(t, senderAddr, "7.5")

	accountRepo := new(MockAccountRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Acquire", ctx, senderAddr).Return(acc, nil).Once(),
		accountRepo.On("Save", ctx, acc).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Append", ctx, mock.AnythingOfType("ledger.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	balance, err := commands.NewDepositFundsCommandHandler(MockAccountUoWFactory{uow: uow}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "20", balance.String())
	uow.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
}
