package queries

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

var (
	ErrListLedgerEntriesQueryIsNotConstructed = errors.New(
		"ListLedgerEntriesQuery must be created via NewListLedgerEntriesQuery constructor",
	)
)

// ListLedgerEntriesQuery lists the custody movements of one order in the
// order they were committed: the lock at creation and, once finalized, the
// release to the carrier.
type ListLedgerEntriesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListLedgerEntriesQuery(orderID kernel.UUID) (ListLedgerEntriesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListLedgerEntriesQuery{}, kernel.NewKindError(kernel.KindInvalidRequest, err)
	}
	return ListLedgerEntriesQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListLedgerEntriesQuery) Validate() error {
	return q.guard.Validate(ErrListLedgerEntriesQueryIsNotConstructed)
}

func (q ListLedgerEntriesQuery) OrderID() kernel.UUID {
	return q.orderID
}
