package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is an escrow order between a sender and a carrier. It is the aggregate
// root for one unit of custody: the amount escrowed at creation stays with the
// order until finalize pays it to the carrier.
//
// Order follows these invariants:
//   - goodsValue and serviceFee never change after creation
//   - escrowedAmount equals goodsValue + serviceFee until finalize, zero after
//   - each agreement flag and deliveryConfirmed is set at most once
//   - the carrier, once bound, never changes and is never the sender
//   - Finalized accepts no further transition
//
// Order is not safe for concurrent mutation. Callers serialize access per
// order id through the row lock taken by the repository.
type Order struct {
	id      kernel.UUID
	sender  kernel.Address
	carrier *kernel.Address

	goodsValue     kernel.Amount
	serviceFee     kernel.Amount
	escrowedAmount kernel.Amount

	carrierAgreed     bool
	senderAgreed      bool
	deliveryConfirmed bool

	status    Status
	version   int64
	createdAt time.Time
	updatedAt time.Time

	events []Event
	guard  guard.ConstructorGuard
}

// NewOrder opens an order and puts goodsValue + serviceFee in its escrow. The
// caller is responsible for debiting the sender in the same unit of work.
//
// carrier is optional: when given, only that party may agree as carrier.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), sender, kernel.MustAmount("100"), kernel.MustAmount("10"), nil, time.Now())
//	if err != nil {
//	    return err // kernel.ErrInvalidAmount for (0, 0)
//	}
func NewOrder(
	id kernel.UUID,
	sender kernel.Address,
	goodsValue, serviceFee kernel.Amount,
	carrier *kernel.Address,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), sender.Validate()); err != nil {
		return nil, err
	}

	if goodsValue.IsZero() && serviceFee.IsZero() {
		return nil, kernel.NewKindErrorf(kernel.KindInvalidAmount, "goodsValue and serviceFee are both zero")
	}
	total, err := goodsValue.CheckedAdd(serviceFee)
	if err != nil {
		return nil, kernel.NewKindError(kernel.KindInvalidAmount, err)
	}

	if carrier != nil {
		if err := carrier.Validate(); err != nil {
			return nil, err
		}
		if carrier.IsEqual(sender) {
			return nil, kernel.NewKindError(kernel.KindInvalidRequest,
				errs.NewValueIsInvalidErrorWithCause("carrier", errors.New("carrier must differ from sender")))
		}
		bound := *carrier
		carrier = &bound
	}

	o := &Order{
		id:             id,
		sender:         sender,
		carrier:        carrier,
		goodsValue:     goodsValue,
		serviceFee:     serviceFee,
		escrowedAmount: total,
		status:         Created,
		version:        1,
		createdAt:      now.UTC(),
		updatedAt:      now.UTC(),
		guard:          guard.NewConstructorGuard(),
	}
	o.record(EventCreated, sender, nil)

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. It rejects snapshots
// that break the aggregate invariants instead of loading a corrupted order.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(s.ID.Validate(), s.Sender.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}

	if err := s.Status.ValidateFlags(s.CarrierAgreed, s.SenderAgreed, s.DeliveryConfirmed); err != nil {
		return nil, err
	}

	if s.CarrierAgreed && s.Carrier == nil {
		return nil, errs.NewValueIsRequiredError("carrier")
	}
	if s.Carrier != nil && s.Carrier.IsEqual(s.Sender) {
		return nil, errs.NewValueIsInvalidErrorWithCause("carrier", errors.New("carrier must differ from sender"))
	}

	expected := s.GoodsValue.Add(s.ServiceFee)
	if s.Status == Finalized {
		expected = kernel.ZeroAmount()
	}
	if !s.EscrowedAmount.IsEqual(expected) {
		return nil, errs.NewValueIsInvalidErrorWithCause("escrowedAmount",
			fmt.Errorf("%s escrowed, expected %s in status %s", s.EscrowedAmount, expected, s.Status))
	}

	if s.Version < 1 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	var carrier *kernel.Address
	if s.Carrier != nil {
		c := *s.Carrier
		carrier = &c
	}

	return &Order{
		id:                s.ID,
		sender:            s.Sender,
		carrier:           carrier,
		goodsValue:        s.GoodsValue,
		serviceFee:        s.ServiceFee,
		escrowedAmount:    s.EscrowedAmount,
		carrierAgreed:     s.CarrierAgreed,
		senderAgreed:      s.SenderAgreed,
		deliveryConfirmed: s.DeliveryConfirmed,
		status:            s.Status,
		version:           s.Version,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID               { return o.id }
func (o *Order) Sender() kernel.Address        { return o.sender }
func (o *Order) GoodsValue() kernel.Amount     { return o.goodsValue }
func (o *Order) ServiceFee() kernel.Amount     { return o.serviceFee }
func (o *Order) EscrowedAmount() kernel.Amount { return o.escrowedAmount }
func (o *Order) CarrierAgreed() bool           { return o.carrierAgreed }
func (o *Order) SenderAgreed() bool            { return o.senderAgreed }
func (o *Order) DeliveryConfirmed() bool       { return o.deliveryConfirmed }
func (o *Order) Status() Status                { return o.status }
func (o *Order) Version() int64                { return o.version }
func (o *Order) CreatedAt() time.Time          { return o.createdAt }
func (o *Order) UpdatedAt() time.Time          { return o.updatedAt }
func (o *Order) Total() kernel.Amount          { return o.goodsValue.Add(o.serviceFee) }

// Carrier returns the bound carrier, or nil while no carrier has agreed and
// none was named at creation.
func (o *Order) Carrier() *kernel.Address {
	if o.carrier == nil {
		return nil
	}
	c := *o.carrier
	return &c
}

// IsParty reports whether addr is the sender or the bound carrier.
func (o *Order) IsParty(addr kernel.Address) bool {
	return o.sender.IsEqual(addr) || (o.carrier != nil && o.carrier.IsEqual(addr))
}

// Agree records the agreement of role on behalf of caller.
//
// Checks run in this order, each failing with its own kind:
//   - status must be Created or PartiallyAgreed (InvalidState)
//   - the role must not have agreed yet (AlreadyAgreed)
//   - caller must be entitled to the role (Unauthorized): the sender for the
//     sender role; anyone but the sender for the carrier role, restricted to
//     the bound carrier once one is bound
//
// The first carrier agreement binds the caller as carrier when none was
// named at creation. No funds move.
func (o *Order) Agree(role Role, caller kernel.Address, now time.Time) error {
	if err := errors.Join(role.Validate(), caller.Validate()); err != nil {
		return kernel.NewKindError(kernel.KindInvalidRequest, err)
	}

	if err := o.status.ValidateAgree(); err != nil {
		return err
	}

	if o.hasAgreed(role) {
		return kernel.NewKindErrorf(kernel.KindAlreadyAgreed, "%s already agreed to order %s", role, o.id)
	}

	if err := o.authorizeAgree(role, caller); err != nil {
		return err
	}

	bothAgreed := (role == Carrier && o.senderAgreed) || (role == Sender && o.carrierAgreed)
	next, err := o.status.Agree(bothAgreed)
	if err != nil {
		return err
	}

	switch role {
	case Carrier:
		o.carrierAgreed = true
		if o.carrier == nil {
			bound := caller
			o.carrier = &bound
		}
	case Sender:
		o.senderAgreed = true
	}
	o.status = next
	o.touch(now)
	o.record(EventAgreed, caller, &role)

	return nil
}

// ConfirmDelivery records that the goods arrived. Only the sender may
// confirm, and only once both roles agreed.
func (o *Order) ConfirmDelivery(confirmer kernel.Address, now time.Time) error {
	if err := confirmer.Validate(); err != nil {
		return kernel.NewKindError(kernel.KindInvalidRequest, err)
	}

	next, err := o.status.ConfirmDelivery(o.carrierAgreed, o.senderAgreed)
	if err != nil {
		return err
	}

	if !confirmer.IsEqual(o.sender) {
		return kernel.NewKindErrorf(kernel.KindUnauthorized, "%s is not the sender of order %s", confirmer, o.id)
	}

	o.deliveryConfirmed = true
	o.status = next
	o.touch(now)
	o.record(EventDeliveryConfirmed, confirmer, nil)

	return nil
}

// ValidateFinalize reports whether Finalize would succeed, without changing
// the order. Used to fail fast before the carrier account is locked.
func (o *Order) ValidateFinalize() error {
	if err := o.status.ValidateFinalize(); err != nil {
		return err
	}
	if o.carrier == nil {
		return kernel.NewKindErrorf(kernel.KindInvalidState, "order %s has no carrier", o.id)
	}
	return nil
}

// Finalize empties the escrow and returns the released amount, which the
// caller credits to the carrier in the same unit of work. Any party may
// trigger it once delivery is confirmed.
func (o *Order) Finalize(caller kernel.Address, now time.Time) (kernel.Amount, error) {
	if err := caller.Validate(); err != nil {
		return kernel.Amount{}, kernel.NewKindError(kernel.KindInvalidRequest, err)
	}

	if err := o.ValidateFinalize(); err != nil {
		return kernel.Amount{}, err
	}

	next, err := o.status.Finalize()
	if err != nil {
		return kernel.Amount{}, err
	}

	released := o.escrowedAmount
	o.escrowedAmount = kernel.ZeroAmount()
	o.status = next
	o.touch(now)
	o.record(EventFinalized, caller, nil)

	return released, nil
}

// DomainEvents returns the events recorded since the order was loaded.
func (o *Order) DomainEvents() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// Snapshot returns a copy of the order state, safe to hand to callers.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                o.id,
		Sender:            o.sender,
		Carrier:           o.Carrier(),
		GoodsValue:        o.goodsValue,
		ServiceFee:        o.serviceFee,
		EscrowedAmount:    o.escrowedAmount,
		CarrierAgreed:     o.carrierAgreed,
		SenderAgreed:      o.senderAgreed,
		DeliveryConfirmed: o.deliveryConfirmed,
		Status:            o.status,
		Version:           o.version,
		CreatedAt:         o.createdAt,
		UpdatedAt:         o.updatedAt,
	}
}

func (o *Order) hasAgreed(role Role) bool {
	if role == Carrier {
		return o.carrierAgreed
	}
	return o.senderAgreed
}

func (o *Order) authorizeAgree(role Role, caller kernel.Address) error {
	switch role {
	case Sender:
		if !caller.IsEqual(o.sender) {
			return kernel.NewKindErrorf(kernel.KindUnauthorized, "%s is not the sender of order %s", caller, o.id)
		}
	case Carrier:
		if caller.IsEqual(o.sender) {
			return kernel.NewKindErrorf(kernel.KindUnauthorized, "sender cannot agree as carrier on order %s", o.id)
		}
		if o.carrier != nil && !caller.IsEqual(*o.carrier) {
			return kernel.NewKindErrorf(kernel.KindUnauthorized, "%s is not the carrier of order %s", caller, o.id)
		}
	}
	return nil
}

func (o *Order) touch(now time.Time) {
	o.version++
	o.updatedAt = now.UTC()
}

func (o *Order) record(t EventType, actor kernel.Address, role *Role) {
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Type:       t,
		OrderID:    o.id,
		Actor:      actor,
		Role:       role,
		Order:      o.Snapshot(),
		OccurredAt: o.updatedAt,
	})
}
