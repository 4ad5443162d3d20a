package kernel_test

import (
	"strings"
	"testing"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should canonicalize case and surrounding space", func(t *testing.T) {
		a, err := kernel.NewAddress("  0xABCdef ")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "0xabcdef", a.String())
		assert.True(t, a.IsEqual(kernel.MustNewAddress("0xabcdef")))
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.NewAddress("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject inner whitespace", func(t *testing.T) {
		_, err := kernel.NewAddress("0xab cd")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject overlong values", func(t *testing.T) {
		_, err := kernel.NewAddress("0x" + strings.Repeat("a", 200))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var a kernel.Address

		assert.True(t, a.IsZero())
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, a.Validate())
	})
}
