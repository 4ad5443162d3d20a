// Package ledger records every movement of value in or out of escrow.
// Entries are append-only and written in the same unit of work as the
// order or account change they describe.
package ledger

import (
	"fmt"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

// Kind is the direction of a custody movement.
type Kind string

const (
	// KindLock moves value from the sender's balance into an order's escrow.
	KindLock Kind = "lock"
	// KindRelease moves an order's escrow to the carrier's balance.
	KindRelease Kind = "release"
	// KindDeposit brings external value into a party's balance.
	KindDeposit Kind = "deposit"
)

func (k Kind) Validate() error {
	switch k {
	case KindLock, KindRelease, KindDeposit:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a ledger entry kind", string(k)))
	}
}

// Entry is one custody movement. From is nil when value comes from outside
// or from escrow; To is nil when value goes into escrow.
type Entry struct {
	ID         kernel.UUID     `json:"id"`
	OrderID    *kernel.UUID    `json:"orderId,omitempty"`
	Kind       Kind            `json:"kind"`
	From       *kernel.Address `json:"from,omitempty"`
	To         *kernel.Address `json:"to,omitempty"`
	Amount     kernel.Amount   `json:"amount"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// NewLock records the escrow lock of a freshly created order.
func NewLock(orderID kernel.UUID, sender kernel.Address, amount kernel.Amount, at time.Time) Entry {
	return Entry{
		ID:         kernel.NewUUID(),
		OrderID:    &orderID,
		Kind:       KindLock,
		From:       &sender,
		Amount:     amount,
		OccurredAt: at.UTC(),
	}
}

// NewRelease records the payout of an order's escrow to its carrier.
func NewRelease(orderID kernel.UUID, carrier kernel.Address, amount kernel.Amount, at time.Time) Entry {
	return Entry{
		ID:         kernel.NewUUID(),
		OrderID:    &orderID,
		Kind:       KindRelease,
		To:         &carrier,
		Amount:     amount,
		OccurredAt: at.UTC(),
	}
}

// NewDeposit records external funding of an account.
func NewDeposit(to kernel.Address, amount kernel.Amount, at time.Time) Entry {
	return Entry{
		ID:         kernel.NewUUID(),
		Kind:       KindDeposit,
		To:         &to,
		Amount:     amount,
		OccurredAt: at.UTC(),
	}
}

// Validate checks that the parties present match the kind.
func (e Entry) Validate() error {
	if err := e.ID.Validate(); err != nil {
		return err
	}
	if err := e.Kind.Validate(); err != nil {
		return err
	}

	var ok bool
	switch e.Kind {
	case KindLock:
		ok = e.OrderID != nil && e.From != nil && e.To == nil
	case KindRelease:
		ok = e.OrderID != nil && e.From == nil && e.To != nil
	case KindDeposit:
		ok = e.OrderID == nil && e.From == nil && e.To != nil
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("entry", fmt.Errorf("parties do not match kind %s", e.Kind))
	}
	return nil
}
