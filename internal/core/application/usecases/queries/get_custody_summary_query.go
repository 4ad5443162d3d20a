package queries

import (
	"errors"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

var (
	ErrGetCustodySummaryQueryIsNotConstructed = errors.New(
		"GetCustodySummaryQuery must be created via NewGetCustodySummaryQuery constructor",
	)
)

// GetCustodySummaryQuery totals every custody movement in the ledger.
type GetCustodySummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustodySummaryQuery() GetCustodySummaryQuery {
	return GetCustodySummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustodySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCustodySummaryQueryIsNotConstructed)
}

// GetCustodySummaryQueryResponse holds Escrowed = Locked - Released, the
// value currently held by unfinalized orders.
type GetCustodySummaryQueryResponse struct {
	Locked    kernel.Amount `json:"locked"`
	Released  kernel.Amount `json:"released"`
	Escrowed  kernel.Amount `json:"escrowed"`
	Deposited kernel.Amount `json:"deposited"`
}
