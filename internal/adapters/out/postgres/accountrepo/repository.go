// Package accountrepo persists party balances in the accounts table.
package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/account"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountDTO struct {
	Address   string          `gorm:"size:128;primaryKey"`
	Balance   decimal.Decimal `gorm:"type:numeric(38,8);not null"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime:false;not null"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

// GormAccountRepository implements ports.AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Acquire inserts an empty row when the address is new and then locks the
// row with SELECT ... FOR UPDATE.
func (r *GormAccountRepository) Acquire(ctx context.Context, address kernel.Address) (*account.Account, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	empty := AccountDTO{Address: address.String(), Balance: decimal.Zero, UpdatedAt: time.Now().UTC()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&empty).Error; err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "address = ?", address.String()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Get reads a balance without locking. Unknown addresses read as empty
// accounts.
func (r *GormAccountRepository) Get(ctx context.Context, address kernel.Address) (*account.Account, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	err := r.db.WithContext(ctx).First(&dto, "address = ?", address.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account.NewAccount(address)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("address = ?", acc.Address().String()).
		Updates(map[string]any{
			"balance":    acc.Balance().Decimal(),
			"updated_at": time.Now().UTC(),
		}).Error
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	address, err := kernel.NewAddress(dto.Address)
	if err != nil {
		return nil, err
	}
	balance, err := kernel.NewAmount(dto.Balance)
	if err != nil {
		return nil, err
	}
	return account.RestoreAccount(address, balance)
}
