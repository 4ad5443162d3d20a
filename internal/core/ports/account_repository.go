package ports

import (
	"context"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/account"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
)

// AccountRepository stores party balances. Unknown addresses read as empty
// accounts; there is no separate registration step.
type AccountRepository interface {
	// Acquire returns the account for address and locks it until the unit of
	// work ends, creating an empty row first if none exists.
	Acquire(ctx context.Context, address kernel.Address) (*account.Account, error)

	// Get reads an account without locking it.
	Get(ctx context.Context, address kernel.Address) (*account.Account, error)

	// Save writes the balance of an account obtained from Acquire.
	Save(ctx context.Context, acc *account.Account) error
}
