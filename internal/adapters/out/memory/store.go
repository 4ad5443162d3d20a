// Package memory is an in-process implementation of the escrow ports. It
// behaves like the postgres adapter where it matters for correctness: rows
// read for update stay locked until the unit of work commits or rolls back,
// writes become visible only on commit, and domain events are written to the
// outbox in the same commit.
//
// It backs STORAGE_DRIVER=memory and the concurrency tests of the command
// handlers.
package memory

import (
	"sync"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"
)

// Store holds committed state. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	orders   map[kernel.UUID]order.Snapshot
	accounts map[string]kernel.Amount
	entries  []ledger.Entry
	messages []outbox.Message

	locks *keyLocks
}

func NewStore() *Store {
	return &Store{
		orders:   make(map[kernel.UUID]order.Snapshot),
		accounts: make(map[string]kernel.Amount),
		locks:    newKeyLocks(),
	}
}

func orderKey(id kernel.UUID) string {
	return "order:" + id.String()
}

func accountKey(address kernel.Address) string {
	return "account:" + address.String()
}

func outboxKey(id kernel.UUID) string {
	return "outbox:" + id.String()
}
