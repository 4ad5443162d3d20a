// Package submission is the transaction channel of the escrow ledger: a
// caller submits an operation name with its arguments and gets back either
// the order snapshot or the kind of failure. Every failure is reported as a
// kernel.ErrorKind; nothing is swallowed.
package submission

import (
	"bytes"
	"encoding/json"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type Operation string

const (
	CreateOrder     Operation = "createOrder"
	AgreeOrder      Operation = "agreeOrder"
	ConfirmDelivery Operation = "confirmDelivery"
	FinalizeOrder   Operation = "finalizeOrder"
)

func Operations() []Operation {
	return []Operation{CreateOrder, AgreeOrder, ConfirmDelivery, FinalizeOrder}
}

// Request is one submitted transaction. Caller is the authenticated
// identity, set by the transport and never read from the body. OrderID may be
// empty for createOrder, in which case an id is assigned.
type Request struct {
	Caller    kernel.Address  `json:"-"`
	Operation Operation       `json:"operation"`
	OrderID   string          `json:"orderId,omitempty"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Result reports the outcome of a Request. On success Order holds the
// snapshot after the transition; on failure ErrorKind says which
// precondition blocked it.
type Result struct {
	Success   bool             `json:"success"`
	Order     *order.Snapshot  `json:"order,omitempty"`
	ErrorKind kernel.ErrorKind `json:"errorKind,omitempty"`
	Message   string           `json:"message,omitempty"`
}

type createOrderArguments struct {
	GoodsValue *decimal.Decimal `json:"goodsValue"`
	ServiceFee *decimal.Decimal `json:"serviceFee"`
	Carrier    *string          `json:"carrier,omitempty"`
}

type agreeOrderArguments struct {
	Role *int `json:"role"`
}

// decodeArguments rejects unknown fields and trailing data. Empty arguments
// decode to the zero value.
func decodeArguments(raw json.RawMessage, into any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}
