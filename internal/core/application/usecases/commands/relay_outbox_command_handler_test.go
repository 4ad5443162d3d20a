package commands_test

import (
	"errors"
	"testing"

	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/commands"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingMessage(eventType string) outbox.Message {
	return outbox.Message{
		ID:          kernel.NewUUID(),
		AggregateID: kernel.NewUUID(),
		EventType:   eventType,
		Payload:     []byte(`{}`),
	}
}

func TestRelayOutboxCommandHandler_Handle_PublishesAndMarks(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	ok := pendingMessage("order.created")
	broken := pendingMessage("order.agreed")
	publishErr := errors.New("broker unavailable")

	outboxRepo := new(MockOutboxRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("GetPending", ctx, 10).Return([]outbox.Message{ok, broken}, nil).Once(),
		publisher.On("Publish", ctx, []outbox.Message{ok}).Return(nil).Once(),
		outboxRepo.On("MarkProcessed", ctx, ok.ID, mock.AnythingOfType("time.Time")).Return(nil).Once(),
		publisher.On("Publish", ctx, []outbox.Message{broken}).Return(publishErr).Once(),
		outboxRepo.On("MarkFailed", ctx, broken.ID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRelayOutboxCommandHandler(MockOutboxUoWFactory{uow: uow}, publisher)
	res, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.RelayOutboxResult{Published: 1, Failed: 1}, res)
	uow.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(1)
	require.NoError(t, err)

	outboxRepo := new(MockOutboxRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(outboxRepo).Once()
	outboxRepo.On("GetPending", ctx, 1).Return([]outbox.Message{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRelayOutboxCommandHandler(MockOutboxUoWFactory{uow: uow}, publisher)
	res, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, res)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNewRelayOutboxCommand(t *testing.T) {
	for _, size := range []int{0, -1, 1001} {
		_, err := commands.NewRelayOutboxCommand(size)
		require.Error(t, err, "batch size %d", size)
	}

	cmd, err := commands.NewRelayOutboxCommand(1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, cmd.BatchSize())
	require.NoError(t, cmd.Validate())
	require.ErrorIs(t, commands.RelayOutboxCommand{}.Validate(), commands.ErrRelayOutboxCommandIsNotConstructed)
}

func TestRelayOutboxCommandHandler_Handle_FailureHoldsBackSameOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	created := pendingMessage("order.created")
	agreed := pendingMessage("order.agreed")
	agreed.AggregateID = created.AggregateID
	unrelated := pendingMessage("order.created")

	outboxRepo := new(MockOutboxRepository)
	publisher := new(MockPublisher)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("GetPending", ctx, 10).Return([]outbox.Message{created, agreed, unrelated}, nil).Once(),
		publisher.On("Publish", ctx, []outbox.Message{created}).Return(errors.New("leader not available")).Once(),
		outboxRepo.On("MarkFailed", ctx, created.ID).Return(nil).Once(),
		publisher.On("Publish", ctx, []outbox.Message{unrelated}).Return(nil).Once(),
		outboxRepo.On("MarkProcessed", ctx, unrelated.ID, mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRelayOutboxCommandHandler(MockOutboxUoWFactory{uow: uow}, publisher)
	res, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.RelayOutboxResult{Published: 1, Failed: 1, Deferred: 1}, res)
	publisher.AssertNotCalled(t, "Publish", ctx, []outbox.Message{agreed})
	outboxRepo.AssertNotCalled(t, "MarkFailed", ctx, agreed.ID)
	outboxRepo.AssertNotCalled(t, "MarkProcessed", ctx, agreed.ID, mock.Anything)
	publisher.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
}
