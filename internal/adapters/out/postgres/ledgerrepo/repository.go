// Package ledgerrepo stores custody movements in the append-only
// ledger_entries table.
package ledgerrepo

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LedgerEntryDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     *uuid.UUID      `gorm:"type:uuid;index"`
	Kind        string          `gorm:"size:16;not null;index"`
	FromAddress *string         `gorm:"size:128"`
	ToAddress   *string         `gorm:"size:128"`
	Amount      decimal.Decimal `gorm:"type:numeric(38,8);not null"`
	OccurredAt  time.Time       `gorm:"not null;index"`
}

func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

// GormLedgerRepository implements ports.LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

func (r *GormLedgerRepository) Append(ctx context.Context, entry ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormLedgerRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]ledger.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LedgerEntryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

type kindSum struct {
	Kind  string
	Total decimal.Decimal
}

// Totals sums the table in SQL, one row per kind.
func (r *GormLedgerRepository) Totals(ctx context.Context) (ledger.Totals, error) {
	var sums []kindSum
	err := r.db.WithContext(ctx).
		Model(&LedgerEntryDTO{}).
		Select("kind, COALESCE(SUM(amount), 0) AS total").
		Group("kind").
		Scan(&sums).Error
	if err != nil {
		return ledger.Totals{}, err
	}

	totals := ledger.Totals{
		Locked:    kernel.ZeroAmount(),
		Released:  kernel.ZeroAmount(),
		Deposited: kernel.ZeroAmount(),
	}
	for _, s := range sums {
		amount, err := kernel.NewAmount(s.Total)
		if err != nil {
			return ledger.Totals{}, err
		}
		totals = totals.Add(ledger.Entry{Kind: ledger.Kind(s.Kind), Amount: amount})
	}
	return totals, nil
}

func fromDomain(e ledger.Entry) LedgerEntryDTO {
	dto := LedgerEntryDTO{
		ID:         e.ID.Bytes(),
		Kind:       string(e.Kind),
		Amount:     e.Amount.Decimal(),
		OccurredAt: e.OccurredAt,
	}
	if e.OrderID != nil {
		id := e.OrderID.Bytes()
		dto.OrderID = &id
	}
	if e.From != nil {
		from := e.From.String()
		dto.FromAddress = &from
	}
	if e.To != nil {
		to := e.To.String()
		dto.ToAddress = &to
	}
	return dto
}

func toDomain(dto LedgerEntryDTO) (ledger.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ledger.Entry{}, err
	}
	amount, err := kernel.NewAmount(dto.Amount)
	if err != nil {
		return ledger.Entry{}, err
	}

	e := ledger.Entry{
		ID:         id,
		Kind:       ledger.Kind(dto.Kind),
		Amount:     amount,
		OccurredAt: dto.OccurredAt.UTC(),
	}
	if dto.OrderID != nil {
		orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
		if err != nil {
			return ledger.Entry{}, err
		}
		e.OrderID = &orderID
	}
	if dto.FromAddress != nil {
		from, err := kernel.NewAddress(*dto.FromAddress)
		if err != nil {
			return ledger.Entry{}, err
		}
		e.From = &from
	}
	if dto.ToAddress != nil {
		to, err := kernel.NewAddress(*dto.ToAddress)
		if err != nil {
			return ledger.Entry{}, err
		}
		e.To = &to
	}
	return e, e.Validate()
}
