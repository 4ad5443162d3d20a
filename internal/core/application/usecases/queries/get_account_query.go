package queries

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

var (
	ErrGetAccountQueryIsNotConstructed = errors.New(
		"GetAccountQuery must be created via NewGetAccountQuery constructor",
	)
)

// GetAccountQuery reads the free balance of a party. Unknown addresses have
// a zero balance.
type GetAccountQuery struct {
	address kernel.Address

	guard guard.ConstructorGuard
}

func NewGetAccountQuery(address kernel.Address) (GetAccountQuery, error) {
	if err := address.Validate(); err != nil {
		return GetAccountQuery{}, kernel.NewKindError(kernel.KindInvalidRequest, err)
	}
	return GetAccountQuery{address: address, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

func (q GetAccountQuery) Address() kernel.Address {
	return q.address
}

type GetAccountQueryResponse struct {
	Address kernel.Address `json:"address"`
	Balance kernel.Amount  `json:"balance"`
}
