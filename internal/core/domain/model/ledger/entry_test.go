package ledger_test

import (
	"testing"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Constructors(t *testing.T) {
	orderID := kernel.NewUUID()
	sender := kernel.MustNewAddress("0xsender")
	carrier := kernel.MustNewAddress("0xcarrier")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))

	lock := ledger.NewLock(orderID, sender, kernel.MustAmount("110"), at)
	release := ledger.NewRelease(orderID, carrier, kernel.MustAmount("110"), at)
	deposit := ledger.NewDeposit(sender, kernel.MustAmount("500"), at)

	for _, e := range []ledger.Entry{lock, release, deposit} {
		require.NoError(t, e.Validate(), string(e.Kind))
		assert.Equal(t, time.UTC, e.OccurredAt.Location())
	}
	assert.True(t, lock.From.IsEqual(sender))
	assert.True(t, release.To.IsEqual(carrier))
	assert.Nil(t, deposit.OrderID)
}

func TestEntry_Validate(t *testing.T) {
	t.Run("should reject parties that do not match the kind", func(t *testing.T) {
		e := ledger.NewLock(kernel.NewUUID(), kernel.MustNewAddress("0xa"), kernel.MustAmount("1"), time.Now())
		e.Kind = ledger.KindRelease

		require.ErrorIs(t, e.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown kinds", func(t *testing.T) {
		e := ledger.NewDeposit(kernel.MustNewAddress("0xa"), kernel.MustAmount("1"), time.Now())
		e.Kind = "refund"

		require.ErrorIs(t, e.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestTotals(t *testing.T) {
	orderID := kernel.NewUUID()
	sender := kernel.MustNewAddress("0xsender")
	carrier := kernel.MustNewAddress("0xcarrier")

	var totals ledger.Totals
	totals = totals.Add(ledger.NewDeposit(sender, kernel.MustAmount("500"), time.Now()))
	totals = totals.Add(ledger.NewLock(orderID, sender, kernel.MustAmount("110"), time.Now()))
	totals = totals.Add(ledger.NewLock(kernel.NewUUID(), sender, kernel.MustAmount("40"), time.Now()))
	totals = totals.Add(ledger.NewRelease(orderID, carrier, kernel.MustAmount("110"), time.Now()))

	escrowed, err := totals.Escrowed()

	require.NoError(t, err)
	assert.Equal(t, "150", totals.Locked.String())
	assert.Equal(t, "110", totals.Released.String())
	assert.Equal(t, "500", totals.Deposited.String())
	assert.Equal(t, "40", escrowed.String())

	t.Run("should flag releases above locks", func(t *testing.T) {
		broken := ledger.Totals{Locked: kernel.MustAmount("10"), Released: kernel.MustAmount("11")}

		_, err := broken.Escrowed()

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
