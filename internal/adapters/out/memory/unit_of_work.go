package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

var (
	// ErrNoTransaction is returned by writes, locking reads, Commit and
	// Rollback outside of Begin.
	ErrNoTransaction = errors.New("no active transaction")
	// ErrLockNotHeld is returned when saving a row that was not locked first.
	ErrLockNotHeld = errors.New("row must be locked before it is written")
)

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes until Commit and holds the row locks it took
// until Commit or Rollback. One instance serves one goroutine.
type UnitOfWork struct {
	store  *Store
	active bool
	held   []string

	orders    map[kernel.UUID]order.Snapshot
	created   map[kernel.UUID]bool
	accounts  map[string]kernel.Amount
	entries   []ledger.Entry
	processed map[kernel.UUID]time.Time
	failed    map[kernel.UUID]int
	tracked   []*order.Order
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return nil
	}
	u.active = true
	u.orders = make(map[kernel.UUID]order.Snapshot)
	u.created = make(map[kernel.UUID]bool)
	u.accounts = make(map[string]kernel.Amount)
	u.processed = make(map[kernel.UUID]time.Time)
	u.failed = make(map[kernel.UUID]int)
	return nil
}

// Commit applies staged writes atomically under the store lock, after
// checking order versions, and appends one outbox message per domain event of
// the tracked orders.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	defer u.finish()

	messages := make([]outbox.Message, 0, len(u.tracked))
	for _, o := range u.tracked {
		for _, e := range o.DomainEvents() {
			msg, err := outbox.FromOrderEvent(e)
			if err != nil {
				return err
			}
			messages = append(messages, msg)
		}
	}

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, snap := range u.orders {
		stored, exists := s.orders[id]
		if u.created[id] && exists {
			return errs.NewObjectExistsError("order", id.String())
		}
		if !u.created[id] && (!exists || stored.Version >= snap.Version) {
			return errs.NewVersionIsInvalidErrorWithCause("order",
				fmt.Errorf("order %s: stored version %d, writing %d", id, stored.Version, snap.Version))
		}
	}

	for id, snap := range u.orders {
		s.orders[id] = snap
	}
	for addr, balance := range u.accounts {
		s.accounts[addr] = balance
	}
	s.entries = append(s.entries, u.entries...)
	for i := range s.messages {
		id := s.messages[i].ID
		if at, ok := u.processed[id]; ok {
			processedAt := at
			s.messages[i].ProcessedAt = &processedAt
		}
		s.messages[i].Attempts += u.failed[id]
	}
	s.messages = append(s.messages, messages...)

	for _, o := range u.tracked {
		o.ClearDomainEvents()
	}
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.finish()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) AccountRepository() ports.AccountRepository {
	return &AccountRepository{uow: u}
}

func (u *UnitOfWork) LedgerRepository() ports.LedgerRepository {
	return &LedgerRepository{uow: u}
}

func (u *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	return &OutboxRepository{uow: u}
}

// TrackAggregate registers an order whose events are written on commit.
func (u *UnitOfWork) TrackAggregate(o *order.Order) {
	for _, t := range u.tracked {
		if t == o {
			return
		}
	}
	u.tracked = append(u.tracked, o)
}

func (u *UnitOfWork) lock(ctx context.Context, key string) error {
	if !u.active {
		return ErrNoTransaction
	}
	if u.holds(key) {
		return nil
	}
	if err := u.store.locks.Lock(ctx, key); err != nil {
		return err
	}
	u.held = append(u.held, key)
	return nil
}

func (u *UnitOfWork) tryLock(key string) bool {
	if u.holds(key) {
		return true
	}
	if !u.store.locks.TryLock(key) {
		return false
	}
	u.held = append(u.held, key)
	return true
}

func (u *UnitOfWork) holds(key string) bool {
	for _, k := range u.held {
		if k == key {
			return true
		}
	}
	return false
}

func (u *UnitOfWork) finish() {
	for i := len(u.held) - 1; i >= 0; i-- {
		u.store.locks.Unlock(u.held[i])
	}
	*u = UnitOfWork{store: u.store}
}
