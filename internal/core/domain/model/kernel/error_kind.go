package kernel

import (
	"errors"
	"fmt"
)

// ErrorKind names the lifecycle stage that blocked an escrow operation.
// Callers branch on it, so every failed precondition maps to exactly one kind.
type ErrorKind string

const (
	KindInvalidAmount       ErrorKind = "InvalidAmount"
	KindInsufficientFunds   ErrorKind = "InsufficientFunds"
	KindOrderNotFound       ErrorKind = "OrderNotFound"
	KindInvalidState        ErrorKind = "InvalidState"
	KindAlreadyAgreed       ErrorKind = "AlreadyAgreed"
	KindAgreementIncomplete ErrorKind = "AgreementIncomplete"
	KindUnauthorized        ErrorKind = "Unauthorized"
	KindAlreadyFinalized    ErrorKind = "AlreadyFinalized"
	KindInvalidRequest      ErrorKind = "InvalidRequest"
	KindInternal            ErrorKind = "Internal"
)

var kindMessages = map[ErrorKind]string{
	KindInvalidAmount:       "amount is invalid",
	KindInsufficientFunds:   "insufficient funds",
	KindOrderNotFound:       "order not found",
	KindInvalidState:        "order state is invalid",
	KindAlreadyAgreed:       "role already agreed",
	KindAgreementIncomplete: "agreement is incomplete",
	KindUnauthorized:        "caller is unauthorized",
	KindAlreadyFinalized:    "order already finalized",
	KindInvalidRequest:      "request is invalid",
	KindInternal:            "internal error",
}

// Sentinels for errors.Is. A KindError matches any sentinel of the same kind.
var (
	ErrInvalidAmount       = &KindError{Kind: KindInvalidAmount}
	ErrInsufficientFunds   = &KindError{Kind: KindInsufficientFunds}
	ErrOrderNotFound       = &KindError{Kind: KindOrderNotFound}
	ErrInvalidState        = &KindError{Kind: KindInvalidState}
	ErrAlreadyAgreed       = &KindError{Kind: KindAlreadyAgreed}
	ErrAgreementIncomplete = &KindError{Kind: KindAgreementIncomplete}
	ErrUnauthorized        = &KindError{Kind: KindUnauthorized}
	ErrAlreadyFinalized    = &KindError{Kind: KindAlreadyFinalized}
	ErrInvalidRequest      = &KindError{Kind: KindInvalidRequest}
)

// KindError is a domain failure tagged with its ErrorKind.
type KindError struct {
	Kind  ErrorKind
	Cause error
}

func NewKindError(kind ErrorKind, cause error) *KindError {
	return &KindError{Kind: kind, Cause: cause}
}

// NewKindErrorf is NewKindError with a formatted cause.
func NewKindErrorf(kind ErrorKind, format string, args ...any) *KindError {
	return &KindError{Kind: kind, Cause: fmt.Errorf(format, args...)}
}

func (e *KindError) Error() string {
	msg, ok := kindMessages[e.Kind]
	if !ok {
		msg = string(e.Kind)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *KindError) Unwrap() error {
	return e.Cause
}

func (e *KindError) Is(target error) bool {
	t, ok := target.(*KindError)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind, true
	}
	return "", false
}
