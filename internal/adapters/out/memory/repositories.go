package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/account"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoTransaction
	}
	if _, ok := r.lookup(aggregate.ID()); ok {
		return errs.NewObjectExistsError("order", aggregate.ID().String())
	}

	r.uow.orders[aggregate.ID()] = aggregate.Snapshot()
	r.uow.created[aggregate.ID()] = true
	r.uow.TrackAggregate(aggregate)
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoTransaction
	}
	if _, ok := r.lookup(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.uow.orders[aggregate.ID()] = aggregate.Snapshot()
	r.uow.TrackAggregate(aggregate)
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	snap, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snap)
}

func (r *OrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := r.uow.lock(ctx, orderKey(id)); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *OrderRepository) ListByParty(_ context.Context, party kernel.Address) ([]*order.Order, error) {
	s := r.uow.store
	s.mu.RLock()
	snaps := make([]order.Snapshot, 0)
	for _, snap := range s.orders {
		if snap.Sender.IsEqual(party) || (snap.Carrier != nil && snap.Carrier.IsEqual(party)) {
			snaps = append(snaps, snap)
		}
	}
	s.mu.RUnlock()

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].CreatedAt.After(snaps[j].CreatedAt)
	})

	orders := make([]*order.Order, 0, len(snaps))
	for _, snap := range snaps {
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) lookup(id kernel.UUID) (order.Snapshot, bool) {
	if snap, ok := r.uow.orders[id]; ok {
		return snap, true
	}
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.orders[id]
	return snap, ok
}

type AccountRepository struct {
	uow *UnitOfWork
}

func (r *AccountRepository) Acquire(ctx context.Context, address kernel.Address) (*account.Account, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if err := r.uow.lock(ctx, accountKey(address)); err != nil {
		return nil, err
	}
	return r.Get(ctx, address)
}

func (r *AccountRepository) Get(_ context.Context, address kernel.Address) (*account.Account, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if balance, ok := r.uow.accounts[address.String()]; ok {
		return account.RestoreAccount(address, balance)
	}

	s := r.uow.store
	s.mu.RLock()
	balance, ok := s.accounts[address.String()]
	s.mu.RUnlock()
	if !ok {
		return account.NewAccount(address)
	}
	return account.RestoreAccount(address, balance)
}

func (r *AccountRepository) Save(_ context.Context, acc *account.Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoTransaction
	}
	if !r.uow.holds(accountKey(acc.Address())) {
		return fmt.Errorf("save account %s: %w", acc.Address(), ErrLockNotHeld)
	}
	r.uow.accounts[acc.Address().String()] = acc.Balance()
	return nil
}

type LedgerRepository struct {
	uow *UnitOfWork
}

func (r *LedgerRepository) Append(_ context.Context, entry ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoTransaction
	}
	r.uow.entries = append(r.uow.entries, entry)
	return nil
}

func (r *LedgerRepository) ListByOrder(_ context.Context, orderID kernel.UUID) ([]ledger.Entry, error) {
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ledger.Entry, 0)
	for _, e := range append(append([]ledger.Entry{}, s.entries...), r.uow.entries...) {
		if e.OrderID != nil && e.OrderID.IsEqual(orderID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *LedgerRepository) Totals(_ context.Context) (ledger.Totals, error) {
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := ledger.Totals{}
	for _, e := range s.entries {
		totals = totals.Add(e)
	}
	return totals, nil
}

type OutboxRepository struct {
	uow *UnitOfWork
}

// GetPending skips messages locked by another unit of work, like
// FOR UPDATE SKIP LOCKED.
func (r *OutboxRepository) GetPending(_ context.Context, limit int) ([]outbox.Message, error) {
	s := r.uow.store
	s.mu.RLock()
	candidates := make([]outbox.Message, 0, limit)
	for _, m := range s.messages {
		if !m.IsProcessed() {
			candidates = append(candidates, m)
		}
	}
	s.mu.RUnlock()

	out := make([]outbox.Message, 0, limit)
	for _, m := range candidates {
		if len(out) == limit {
			break
		}
		if r.uow.active {
			if !r.uow.tryLock(outboxKey(m.ID)) || r.processedMeanwhile(m.ID) {
				continue
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *OutboxRepository) MarkProcessed(_ context.Context, id kernel.UUID, at time.Time) error {
	if !r.uow.active {
		return ErrNoTransaction
	}
	r.uow.processed[id] = at.UTC()
	return nil
}

func (r *OutboxRepository) MarkFailed(_ context.Context, id kernel.UUID) error {
	if !r.uow.active {
		return ErrNoTransaction
	}
	r.uow.failed[id]++
	return nil
}

// processedMeanwhile catches a message committed by another relay between the
// unlocked scan and taking its lock.
func (r *OutboxRepository) processedMeanwhile(id kernel.UUID) bool {
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.messages {
		if m.ID.IsEqual(id) {
			return m.IsProcessed()
		}
	}
	return false
}
