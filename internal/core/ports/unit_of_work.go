package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one escrow operation. Every
// order, account, ledger and outbox write done through its repositories
// between Begin and Commit becomes visible together or not at all.
//
// Row locks taken by GetForUpdate and Acquire are held until Commit or
// Rollback. Handlers lock the order row before any account row.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit writes the domain events of tracked aggregates to the outbox and
	// commits. Returns error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and releases its locks.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	AccountRepository() AccountRepository
	LedgerRepository() LedgerRepository
	OutboxRepository() OutboxRepository
}
