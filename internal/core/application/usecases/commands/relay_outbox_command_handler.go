package commands

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
)

// RelayOutboxResult counts what one relay pass did. Deferred messages were
// left untouched because an earlier event of the same order failed.
type RelayOutboxResult struct {
	Published int
	Failed    int
	Deferred  int
}

// RelayOutboxCommandHandler publishes pending outbox messages one by one and
// marks each as processed or failed. A failed message stays pending and is
// retried on the next pass. Later messages of the same order wait for it, so
// consumers see the events of an order in the order they happened; messages
// of other orders are not held back.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayOutboxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	pending, err := repo.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return RelayOutboxResult{}, err
	}

	var res RelayOutboxResult
	blocked := make(map[kernel.UUID]struct{})
	for _, msg := range pending {
		if _, ok := blocked[msg.AggregateID]; ok {
			res.Deferred++
			continue
		}
		if pubErr := h.publisher.Publish(ctx, msg); pubErr != nil {
			if err = repo.MarkFailed(ctx, msg.ID); err != nil {
				return RelayOutboxResult{}, err
			}
			blocked[msg.AggregateID] = struct{}{}
			res.Failed++
			continue
		}
		if err = repo.MarkProcessed(ctx, msg.ID, time.Now()); err != nil {
			return RelayOutboxResult{}, err
		}
		res.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	return res, nil
}
