package ledger

import (
	"fmt"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

// Totals sums the ledger by kind.
type Totals struct {
	Locked    kernel.Amount `json:"locked"`
	Released  kernel.Amount `json:"released"`
	Deposited kernel.Amount `json:"deposited"`
}

// Add folds one entry into the totals.
func (t Totals) Add(e Entry) Totals {
	switch e.Kind {
	case KindLock:
		t.Locked = t.Locked.Add(e.Amount)
	case KindRelease:
		t.Released = t.Released.Add(e.Amount)
	case KindDeposit:
		t.Deposited = t.Deposited.Add(e.Amount)
	}
	return t
}

// Escrowed is the value still held by open orders: locked minus released.
// It fails when more was released than ever locked.
func (t Totals) Escrowed() (kernel.Amount, error) {
	held, err := t.Locked.Sub(t.Released)
	if err != nil {
		return kernel.Amount{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"released", t.Released.String(), "0", t.Locked.String(),
			fmt.Errorf("released %s exceeds locked %s", t.Released, t.Locked),
		)
	}
	return held, nil
}
