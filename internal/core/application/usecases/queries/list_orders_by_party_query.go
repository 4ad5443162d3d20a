package queries

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

var (
	ErrListOrdersByPartyQueryIsNotConstructed = errors.New(
		"ListOrdersByPartyQuery must be created via NewListOrdersByPartyQuery constructor",
	)
)

// ListOrdersByPartyQuery lists the orders where party is the sender or the
// bound carrier, newest first.
type ListOrdersByPartyQuery struct {
	party kernel.Address

	guard guard.ConstructorGuard
}

func NewListOrdersByPartyQuery(party kernel.Address) (ListOrdersByPartyQuery, error) {
	if err := party.Validate(); err != nil {
		return ListOrdersByPartyQuery{}, kernel.NewKindError(kernel.KindInvalidRequest, err)
	}
	return ListOrdersByPartyQuery{party: party, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersByPartyQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByPartyQueryIsNotConstructed)
}

func (q ListOrdersByPartyQuery) Party() kernel.Address {
	return q.party
}
