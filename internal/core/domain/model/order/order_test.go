package order_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sender   = kernel.MustNewAddress("0xsender")
	carrier  = kernel.MustNewAddress("0xcarrier")
	stranger = kernel.MustNewAddress("0xstranger")
	now      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), sender, kernel.MustAmount("100"), kernel.MustAmount("10"), nil, now)
	require.NoError(t, err)
	return o
}

// orderIn drives a fresh order through the lifecycle up to status.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newOrder(t)
	if status >= order.PartiallyAgreed {
		require.NoError(t, o.Agree(order.Carrier, carrier, now))
	}
	if status >= order.FullyAgreed {
		require.NoError(t, o.Agree(order.Sender, sender, now))
	}
	if status >= order.DeliveryConfirmed {
		require.NoError(t, o.ConfirmDelivery(sender, now))
	}
	if status >= order.Finalized {
		_, err := o.Finalize(carrier, now)
		require.NoError(t, err)
	}
	require.Equal(t, status, o.Status())
	o.ClearDomainEvents()
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should lock goods value plus fee", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, sender, kernel.MustAmount("100"), kernel.MustAmount("10"), nil, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, "110", o.EscrowedAmount().String())
		assert.Equal(t, "110", o.Total().String())
		assert.False(t, o.CarrierAgreed())
		assert.False(t, o.SenderAgreed())
		assert.False(t, o.DeliveryConfirmed())
		assert.Nil(t, o.Carrier())
		assert.Equal(t, int64(1), o.Version())

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventCreated, events[0].Type)
		assert.True(t, events[0].Actor.IsEqual(sender))
	})

	t.Run("should accept a zero fee", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), sender, kernel.MustAmount("5"), kernel.ZeroAmount(), nil, now)

		require.NoError(t, err)
		assert.Equal(t, "5", o.EscrowedAmount().String())
	})

	t.Run("should reject two zero amounts", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), sender, kernel.ZeroAmount(), kernel.ZeroAmount(), nil, now)

		require.ErrorIs(t, err, kernel.ErrInvalidAmount)
		assert.Nil(t, o)
	})

	t.Run("should reject a total past the amount range", func(t *testing.T) {
		half := kernel.MustAmount("600000000000000000000000000000")

		_, err := order.NewOrder(kernel.NewUUID(), sender, half, half, nil, now)

		require.ErrorIs(t, err, kernel.ErrInvalidAmount)
	})

	t.Run("should reject unconstructed id and sender together", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.Address{}, kernel.MustAmount("1"), kernel.ZeroAmount(), nil, now)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	})

	t.Run("should bind a named carrier", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), sender, kernel.MustAmount("1"), kernel.ZeroAmount(), &carrier, now)

		require.NoError(t, err)
		require.NotNil(t, o.Carrier())
		assert.True(t, o.Carrier().IsEqual(carrier))
	})

	t.Run("should refuse the sender as carrier", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), sender, kernel.MustAmount("1"), kernel.ZeroAmount(), &sender, now)

		require.ErrorIs(t, err, kernel.ErrInvalidRequest)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	assert.NoError(t, newOrder(t).Validate())
}

func TestOrder_Agree(t *testing.T) {
	t.Run("carrier first binds the carrier", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Agree(order.Carrier, carrier, now.Add(time.Minute)))

		assert.Equal(t, order.PartiallyAgreed, o.Status())
		assert.True(t, o.CarrierAgreed())
		assert.True(t, o.Carrier().IsEqual(carrier))
		assert.Equal(t, int64(2), o.Version())
		assert.Equal(t, now.Add(time.Minute), o.UpdatedAt())
	})

	t.Run("both roles reach FullyAgreed in either order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Agree(order.Sender, sender, now))
		assert.Equal(t, order.PartiallyAgreed, o.Status())
		require.NoError(t, o.Agree(order.Carrier, carrier, now))

		assert.Equal(t, order.FullyAgreed, o.Status())
		assert.Equal(t, "110", o.EscrowedAmount().String())
		assert.Len(t, o.DomainEvents(), 3)
	})

	t.Run("duplicate role is rejected and leaves state alone", func(t *testing.T) {
		o := orderIn(t, order.PartiallyAgreed)
		before := o.Snapshot()

		err := o.Agree(order.Carrier, carrier, now.Add(time.Hour))

		require.ErrorIs(t, err, kernel.ErrAlreadyAgreed)
		assert.Equal(t, before, o.Snapshot())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("agreement after FullyAgreed is InvalidState", func(t *testing.T) {
		for _, s := range []order.Status{order.FullyAgreed, order.DeliveryConfirmed, order.Finalized} {
			o := orderIn(t, s)

			err := o.Agree(order.Sender, sender, now)

			require.ErrorIs(t, err, kernel.ErrInvalidState, s.String())
		}
	})

	t.Run("sender role requires the sender", func(t *testing.T) {
		o := newOrder(t)

		err := o.Agree(order.Sender, stranger, now)

		require.ErrorIs(t, err, kernel.ErrUnauthorized)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("sender cannot agree as carrier", func(t *testing.T) {
		o := newOrder(t)

		err := o.Agree(order.Carrier, sender, now)

		require.ErrorIs(t, err, kernel.ErrUnauthorized)
	})

	t.Run("named carrier is the only carrier", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), sender, kernel.MustAmount("1"), kernel.ZeroAmount(), &carrier, now)
		require.NoError(t, err)

		require.ErrorIs(t, o.Agree(order.Carrier, stranger, now), kernel.ErrUnauthorized)
		require.NoError(t, o.Agree(order.Carrier, carrier, now))
	})

	t.Run("invalid role is an invalid request", func(t *testing.T) {
		o := newOrder(t)

		err := o.Agree(order.Role(7), carrier, now)

		require.ErrorIs(t, err, kernel.ErrInvalidRequest)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	t.Run("sender confirms a fully agreed order", func(t *testing.T) {
		o := orderIn(t, order.FullyAgreed)

		require.NoError(t, o.ConfirmDelivery(sender, now))

		assert.Equal(t, order.DeliveryConfirmed, o.Status())
		assert.True(t, o.DeliveryConfirmed())
		assert.Equal(t, "110", o.EscrowedAmount().String())
	})

	t.Run("carrier confirmation is unauthorized and changes nothing", func(t *testing.T) {
		o := orderIn(t, order.FullyAgreed)
		before := o.Snapshot()

		err := o.ConfirmDelivery(carrier, now)

		require.ErrorIs(t, err, kernel.ErrUnauthorized)
		assert.Equal(t, before, o.Snapshot())
	})

	t.Run("incomplete agreement", func(t *testing.T) {
		require.ErrorIs(t, newOrder(t).ConfirmDelivery(sender, now), kernel.ErrAgreementIncomplete)
		require.ErrorIs(t, orderIn(t, order.PartiallyAgreed).ConfirmDelivery(sender, now), kernel.ErrAgreementIncomplete)
	})

	t.Run("second confirmation is InvalidState", func(t *testing.T) {
		require.ErrorIs(t, orderIn(t, order.DeliveryConfirmed).ConfirmDelivery(sender, now), kernel.ErrInvalidState)
		require.ErrorIs(t, orderIn(t, order.Finalized).ConfirmDelivery(sender, now), kernel.ErrInvalidState)
	})
}

func TestOrder_Finalize(t *testing.T) {
	t.Run("releases the whole escrow", func(t *testing.T) {
		o := orderIn(t, order.DeliveryConfirmed)

		released, err := o.Finalize(stranger, now)

		require.NoError(t, err)
		assert.Equal(t, "110", released.String())
		assert.True(t, o.EscrowedAmount().IsZero())
		assert.Equal(t, order.Finalized, o.Status())

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventFinalized, events[0].Type)
		assert.Equal(t, order.Finalized, events[0].Order.Status)
	})

	t.Run("never succeeds before delivery is confirmed", func(t *testing.T) {
		for _, s := range []order.Status{order.Created, order.PartiallyAgreed, order.FullyAgreed} {
			o := orderIn(t, s)

			released, err := o.Finalize(carrier, now)

			require.ErrorIs(t, err, kernel.ErrInvalidState, s.String())
			assert.True(t, released.IsZero())
			assert.Equal(t, "110", o.EscrowedAmount().String())
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("replay is AlreadyFinalized", func(t *testing.T) {
		o := orderIn(t, order.Finalized)

		_, err := o.Finalize(carrier, now)

		require.ErrorIs(t, err, kernel.ErrAlreadyFinalized)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores every reachable state", func(t *testing.T) {
		for _, s := range order.Statuses() {
			snap := orderIn(t, s).Snapshot()

			restored, err := order.RestoreOrder(snap)

			require.NoError(t, err, s.String())
			assert.Equal(t, snap, restored.Snapshot())
			assert.Empty(t, restored.DomainEvents())
		}
	})

	t.Run("rejects escrow that does not match the total", func(t *testing.T) {
		snap := orderIn(t, order.FullyAgreed).Snapshot()
		snap.EscrowedAmount = kernel.MustAmount("109")

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a finalized order still holding funds", func(t *testing.T) {
		snap := orderIn(t, order.Finalized).Snapshot()
		snap.EscrowedAmount = kernel.MustAmount("110")

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects flags inconsistent with status", func(t *testing.T) {
		snap := orderIn(t, order.Created).Snapshot()
		snap.DeliveryConfirmed = true

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects carrier agreement without a carrier", func(t *testing.T) {
		snap := orderIn(t, order.PartiallyAgreed).Snapshot()
		snap.Carrier = nil

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero version", func(t *testing.T) {
		snap := newOrder(t).Snapshot()
		snap.Version = 0

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestSnapshot_JSON(t *testing.T) {
	o := orderIn(t, order.PartiallyAgreed)

	raw, err := json.Marshal(o.Snapshot())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "PartiallyAgreed", fields["state"])
	assert.Equal(t, "110", fields["escrowedAmount"])
	assert.Equal(t, "0xcarrier", fields["carrier"])

	var decoded order.Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))
	restored, err := order.RestoreOrder(decoded)
	require.NoError(t, err)
	assert.Equal(t, o.Status(), restored.Status())
	assert.True(t, restored.Carrier().IsEqual(carrier))
}
