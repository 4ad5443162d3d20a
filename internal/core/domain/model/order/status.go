package order

import (
	"fmt"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
)

// Status is the lifecycle state of an escrow order. It is tracked explicitly
// rather than derived from the agreement flags so that every transition is
// checked against the state the order is actually in.
//
// State transitions:
//
//	Created ──> PartiallyAgreed ──> FullyAgreed ──> DeliveryConfirmed ──> Finalized
//
// No transition skips a stage: one agree call records one role.
type Status int

const (
	// Unknown catches uninitialized values and is never persisted.
	Unknown Status = iota

	// Created is the state right after the sender locked funds.
	Created

	// PartiallyAgreed means exactly one of the two roles has agreed.
	PartiallyAgreed

	// FullyAgreed means both roles agreed. Delivery may now be confirmed.
	FullyAgreed

	// DeliveryConfirmed means the sender confirmed delivery. Finalize may run.
	DeliveryConfirmed

	// Finalized is terminal: escrow was released to the carrier.
	Finalized
)

var statusNames = map[Status]string{
	Unknown:           "Unknown",
	Created:           "Created",
	PartiallyAgreed:   "PartiallyAgreed",
	FullyAgreed:       "FullyAgreed",
	DeliveryConfirmed: "DeliveryConfirmed",
	Finalized:         "Finalized",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, PartiallyAgreed, FullyAgreed, DeliveryConfirmed, Finalized}
}

// StatusFromString parses the name produced by String.
func StatusFromString(s string) (Status, error) {
	for _, status := range Statuses() {
		if statusNames[status] == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. read from storage.
func (s Status) Validate() error {
	if s < Created || s > Finalized {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := StatusFromString(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ValidateAgree reports whether an agreement may still be recorded.
func (s Status) ValidateAgree() error {
	if s != Created && s != PartiallyAgreed {
		return kernel.NewKindErrorf(kernel.KindInvalidState, "%s is not a valid status to agree", s)
	}
	return nil
}

// Agree returns the status after one more role agreed. bothAgreed tells
// whether the other role had already agreed as well.
func (s Status) Agree(bothAgreed bool) (Status, error) {
	if err := s.ValidateAgree(); err != nil {
		return Unknown, err
	}
	if bothAgreed {
		return FullyAgreed, nil
	}
	return PartiallyAgreed, nil
}

// ValidateConfirmDelivery checks, in order: that delivery was not confirmed
// already, that both roles agreed, and that the order sits in FullyAgreed.
// The flag check runs even though FullyAgreed implies it, so a corrupted
// status can never let a confirmation through.
func (s Status) ValidateConfirmDelivery(carrierAgreed, senderAgreed bool) error {
	if s == DeliveryConfirmed || s == Finalized {
		return kernel.NewKindErrorf(kernel.KindInvalidState, "delivery already confirmed, order is %s", s)
	}
	if !carrierAgreed || !senderAgreed {
		return kernel.NewKindErrorf(
			kernel.KindAgreementIncomplete,
			"carrierAgreed=%t senderAgreed=%t", carrierAgreed, senderAgreed,
		)
	}
	if s != FullyAgreed {
		return kernel.NewKindErrorf(kernel.KindInvalidState, "%s is not a valid status to confirm delivery", s)
	}
	return nil
}

func (s Status) ConfirmDelivery(carrierAgreed, senderAgreed bool) (Status, error) {
	if err := s.ValidateConfirmDelivery(carrierAgreed, senderAgreed); err != nil {
		return Unknown, err
	}
	return DeliveryConfirmed, nil
}

// ValidateFinalize allows finalize from DeliveryConfirmed only.
func (s Status) ValidateFinalize() error {
	if s == Finalized {
		return kernel.NewKindError(kernel.KindAlreadyFinalized, nil)
	}
	if s != DeliveryConfirmed {
		return kernel.NewKindErrorf(kernel.KindInvalidState, "%s is not a valid status to finalize", s)
	}
	return nil
}

func (s Status) Finalize() (Status, error) {
	if err := s.ValidateFinalize(); err != nil {
		return Unknown, err
	}
	return Finalized, nil
}

// ValidateFlags checks that the agreement and delivery flags are the ones the
// status implies. Used when an order is restored from storage.
func (s Status) ValidateFlags(carrierAgreed, senderAgreed, deliveryConfirmed bool) error {
	var ok bool
	switch s {
	case Created:
		ok = !carrierAgreed && !senderAgreed && !deliveryConfirmed
	case PartiallyAgreed:
		ok = carrierAgreed != senderAgreed && !deliveryConfirmed
	case FullyAgreed:
		ok = carrierAgreed && senderAgreed && !deliveryConfirmed
	case DeliveryConfirmed, Finalized:
		ok = carrierAgreed && senderAgreed && deliveryConfirmed
	case Unknown:
	}
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf(
			"%s does not match carrierAgreed=%t senderAgreed=%t deliveryConfirmed=%t",
			s, carrierAgreed, senderAgreed, deliveryConfirmed,
		))
	}
	return nil
}
