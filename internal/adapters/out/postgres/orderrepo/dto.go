// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Money columns are numeric so that
// sums in SQL stay exact.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Sender            string          `gorm:"size:128;not null;index"`
	Carrier           *string         `gorm:"size:128;index"`
	GoodsValue        decimal.Decimal `gorm:"type:numeric(38,8);not null"`
	ServiceFee        decimal.Decimal `gorm:"type:numeric(38,8);not null"`
	EscrowedAmount    decimal.Decimal `gorm:"type:numeric(38,8);not null"`
	CarrierAgreed     bool            `gorm:"not null"`
	SenderAgreed      bool            `gorm:"not null"`
	DeliveryConfirmed bool            `gorm:"not null"`
	Status            int             `gorm:"not null;index"`
	Version           int64           `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime:false;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	snap := o.Snapshot()

	var carrier *string
	if snap.Carrier != nil {
		c := snap.Carrier.String()
		carrier = &c
	}

	return OrderDTO{
		ID:                snap.ID.Bytes(),
		Sender:            snap.Sender.String(),
		Carrier:           carrier,
		GoodsValue:        snap.GoodsValue.Decimal(),
		ServiceFee:        snap.ServiceFee.Decimal(),
		EscrowedAmount:    snap.EscrowedAmount.Decimal(),
		CarrierAgreed:     snap.CarrierAgreed,
		SenderAgreed:      snap.SenderAgreed,
		DeliveryConfirmed: snap.DeliveryConfirmed,
		Status:            int(snap.Status),
		Version:           snap.Version,
		CreatedAt:         snap.CreatedAt,
		UpdatedAt:         snap.UpdatedAt,
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder, so a row that
// breaks an order invariant is reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sender, err := kernel.NewAddress(dto.Sender)
	if err != nil {
		return nil, err
	}

	var carrier *kernel.Address
	if dto.Carrier != nil {
		c, carrierErr := kernel.NewAddress(*dto.Carrier)
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrier = &c
	}

	goods, err := kernel.NewAmount(dto.GoodsValue)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewAmount(dto.ServiceFee)
	if err != nil {
		return nil, err
	}
	escrowed, err := kernel.NewAmount(dto.EscrowedAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                id,
		Sender:            sender,
		Carrier:           carrier,
		GoodsValue:        goods,
		ServiceFee:        fee,
		EscrowedAmount:    escrowed,
		CarrierAgreed:     dto.CarrierAgreed,
		SenderAgreed:      dto.SenderAgreed,
		DeliveryConfirmed: dto.DeliveryConfirmed,
		Status:            order.Status(dto.Status),
		Version:           dto.Version,
		CreatedAt:         dto.CreatedAt.UTC(),
		UpdatedAt:         dto.UpdatedAt.UTC(),
	})
}
