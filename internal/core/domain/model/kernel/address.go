package kernel

import (
	"fmt"
	"strings"

	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/guard"
)

const maxAddressLength = 128

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address identifies a party (sender or carrier) as authenticated by the
// hosting platform, typically a wallet address. Comparison is case-insensitive
// for hex-style addresses: the canonical form is trimmed and lower-cased.
type Address struct {
	value string
	guard guard.ConstructorGuard
}

// NewAddress validates and canonicalizes a party identity.
func NewAddress(raw string) (Address, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if len(value) > maxAddressLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", len(value), 1, maxAddressLength)
	}
	if strings.ContainsAny(value, " \t\r\n") {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address", fmt.Errorf("%q contains whitespace", raw))
	}

	return Address{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustNewAddress is NewAddress for literals known to be valid. It panics otherwise.
func MustNewAddress(raw string) Address {
	a, err := NewAddress(raw)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	return a.value
}

func (a Address) IsZero() bool {
	return a.value == ""
}

func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.value), nil
}

func (a *Address) UnmarshalText(b []byte) error {
	parsed, err := NewAddress(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
