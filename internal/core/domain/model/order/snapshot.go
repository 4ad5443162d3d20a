package order

import (
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
)

// Snapshot is the plain state of an order as returned to clients, stored by
// repositories and embedded in events.
type Snapshot struct {
	ID                kernel.UUID     `json:"id"`
	Sender            kernel.Address  `json:"sender"`
	Carrier           *kernel.Address `json:"carrier,omitempty"`
	GoodsValue        kernel.Amount   `json:"goodsValue"`
	ServiceFee        kernel.Amount   `json:"serviceFee"`
	EscrowedAmount    kernel.Amount   `json:"escrowedAmount"`
	CarrierAgreed     bool            `json:"carrierAgreed"`
	SenderAgreed      bool            `json:"senderAgreed"`
	DeliveryConfirmed bool            `json:"deliveryConfirmed"`
	Status            Status          `json:"state"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
