// Package postgres provides the GORM implementation of the escrow unit of
// work. One GormUnitOfWork wraps one database transaction; the order,
// account, ledger and outbox repositories it hands out run inside that
// transaction while it is open.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate o, then
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Locking:
//   - GetForUpdate and AccountRepository().Acquire take row locks with
//     SELECT ... FOR UPDATE that are held until Commit or Rollback
//   - the outbox relay reads with FOR UPDATE SKIP LOCKED
//
// The connection must be opened with gorm.Config{TranslateError: true} so
// that a duplicate order id surfaces as errs.ErrObjectExists.
package postgres

import (
	"context"

	"github.com/M-ayank2005/Carryaptos/internal/adapters/out/postgres/accountrepo"
	"github.com/M-ayank2005/Carryaptos/internal/adapters/out/postgres/ledgerrepo"
	"github.com/M-ayank2005/Carryaptos/internal/adapters/out/postgres/orderrepo"
	"github.com/M-ayank2005/Carryaptos/internal/adapters/out/postgres/outboxrepo"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"

	"gorm.io/gorm"
)

// Migrate creates or updates the escrow tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&accountrepo.AccountDTO{},
		&ledgerrepo.LedgerEntryDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool. Each business operation gets a fresh instance.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and tracks the orders
// written through it. Their domain events become outbox rows in the same
// transaction when Commit runs.
//
// An instance is not safe for concurrent use.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []*order.Order
}

// Begin starts a transaction. Calling Begin again while one is open is a
// no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.tracked = nil
	return nil
}

// Commit writes one outbox message per pending domain event of the tracked
// orders and commits. The events are cleared from the aggregates only after
// the commit succeeds. If writing the outbox fails the transaction is rolled
// back.
//
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	tx := uow.tx
	uow.tx = nil

	messages := make([]outbox.Message, 0, len(uow.tracked))
	for _, o := range uow.tracked {
		for _, e := range o.DomainEvents() {
			msg, err := outbox.FromOrderEvent(e)
			if err != nil {
				tx.Rollback()
				return err
			}
			messages = append(messages, msg)
		}
	}

	if err := outboxrepo.NewGormOutboxRepository(tx).Add(ctx, messages...); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	for _, o := range uow.tracked {
		o.ClearDomainEvents()
	}
	uow.tracked = nil
	return nil
}

// Rollback discards the transaction and releases its row locks.
//
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// makes a deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = nil
	return err
}

// OrderRepository runs inside the current transaction if one is active,
// otherwise on the main connection. Orders it adds or updates are tracked
// for the outbox.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}

func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an order written in this unit of work. Repeated
// writes of the same instance are tracked once.
func (uow *GormUnitOfWork) TrackAggregate(o *order.Order) {
	for _, t := range uow.tracked {
		if t == o {
			return
		}
	}
	uow.tracked = append(uow.tracked, o)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
