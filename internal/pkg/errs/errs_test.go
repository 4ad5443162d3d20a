package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("row changed concurrently")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			"order not found",
			errs.NewObjectNotFoundError("order", "42"),
			errs.ErrObjectNotFound,
			"object not found: order 42",
		},
		{
			"order not found with cause",
			errs.NewObjectNotFoundErrorWithCause("order", "42", cause),
			errs.ErrObjectNotFound,
			"object not found: order 42 (cause: row changed concurrently)",
		},
		{
			"duplicate order",
			errs.NewObjectExistsError("order", "42"),
			errs.ErrObjectExists,
			"object already exists: order 42",
		},
		{
			"invalid amount",
			errs.NewValueIsInvalidError("amount"),
			errs.ErrValueIsInvalid,
			"value is invalid: amount",
		},
		{
			"invalid amount with cause",
			errs.NewValueIsInvalidErrorWithCause("amount", errors.New("-1 is negative")),
			errs.ErrValueIsInvalid,
			"value is invalid: amount (cause: -1 is negative)",
		},
		{
			"address too long",
			errs.NewValueIsOutOfRangeError("address length", 200, 1, 128),
			errs.ErrValueIsOutOfRange,
			"value is out of range: address length is 200, allowed range is [1, 128]",
		},
		{
			"released above locked",
			errs.NewValueIsOutOfRangeErrorWithCause("released", "120", "0", "110", errors.New("released 120 exceeds locked 110")),
			errs.ErrValueIsOutOfRange,
			"value is out of range: released is 120, allowed range is [0, 110] (cause: released 120 exceeds locked 110)",
		},
		{
			"missing sender",
			errs.NewValueIsRequiredError("sender"),
			errs.ErrValueIsRequired,
			"value is required: sender",
		},
		{
			"stale order",
			errs.NewVersionIsInvalidErrorWithCause("order", cause),
			errs.ErrVersionIsInvalid,
			"version is invalid: order (cause: row changed concurrently)",
		},
		{
			"stale order without cause",
			errs.NewVersionIsInvalidError("order"),
			errs.ErrVersionIsInvalid,
			"version is invalid: order",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestSentinelsStayDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrObjectExists,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrVersionIsInvalid,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update order: %w", errs.NewVersionIsInvalidError("order"))

	require.ErrorIs(t, wrapped, errs.ErrVersionIsInvalid)

	var target *errs.VersionIsInvalidError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "order", target.ParamName)
}

func TestMessagesStayOnOneLine(t *testing.T) {
	err := errs.NewObjectExistsError("order", "a\nb")

	assert.Equal(t, "object already exists: order a b", err.Error())
}
