package kernel

import (
	"fmt"
	"strconv"

	"github.com/M-ayank2005/Carryaptos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits kept for monetary values.
// Inputs with more precision are rejected rather than rounded.
const AmountScale = 8

// AmountIntegerDigits bounds the integer part so every amount fits a
// numeric(38,8) column.
const AmountIntegerDigits = 30

var amountLimit = decimal.New(1, AmountIntegerDigits)

// Amount is an immutable non-negative monetary value backed by
// github.com/shopspring/decimal. The zero value is a valid zero amount.
type Amount struct {
	d decimal.Decimal
}

// ZeroAmount returns the zero amount.
func ZeroAmount() Amount {
	return Amount{d: decimal.Zero}
}

// NewAmount validates d as a monetary value: non-negative, below
// 10^AmountIntegerDigits and with at most AmountScale fractional digits.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", d.String()))
	}
	if !d.LessThan(amountLimit) {
		return Amount{}, errs.NewValueIsOutOfRangeError("amount", d.String(), 0, "1e"+strconv.Itoa(AmountIntegerDigits))
	}
	if !d.Equal(d.Truncate(AmountScale)) {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s has more than %d fractional digits", d.String(), AmountScale),
		)
	}
	return Amount{d: d}, nil
}

// AmountFromString parses a decimal string such as "110" or "0.25".
func AmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewAmount(d)
}

// AmountFromInt builds an amount from whole units.
func AmountFromInt(units int64) (Amount, error) {
	return NewAmount(decimal.NewFromInt(units))
}

// MustAmount is AmountFromString for literals known to be valid.
func MustAmount(s string) Amount {
	a, err := AmountFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

func (a Amount) Add(other Amount) Amount {
	return Amount{d: a.d.Add(other.d)}
}

// CheckedAdd returns a + other, failing when the sum leaves the amount range.
func (a Amount) CheckedAdd(other Amount) (Amount, error) {
	return NewAmount(a.d.Add(other.d))
}

// Sub returns a - other. It fails instead of producing a negative amount.
func (a Amount) Sub(other Amount) (Amount, error) {
	res := a.d.Sub(other.d)
	if res.IsNegative() {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s - %s is negative", a.d.String(), other.d.String()),
		)
	}
	return Amount{d: res}, nil
}

func (a Amount) Cmp(other Amount) int {
	return a.d.Cmp(other.d)
}

func (a Amount) LessThan(other Amount) bool {
	return a.d.LessThan(other.d)
}

func (a Amount) IsEqual(other Amount) bool {
	return a.d.Equal(other.d)
}

func (a Amount) String() string {
	return a.d.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.d.MarshalJSON()
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	parsed, err := NewAmount(d)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
