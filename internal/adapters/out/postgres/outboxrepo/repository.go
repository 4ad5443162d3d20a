// Package outboxrepo stores domain events awaiting publication in the
// outbox_messages table.
package outboxrepo

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/kernel"
	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType   string     `gorm:"size:64;not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	ProcessedAt *time.Time `gorm:"index"`
	Attempts    int        `gorm:"not null;default:0"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add writes new messages. The unit of work calls it on commit.
func (r *GormOutboxRepository) Add(ctx context.Context, messages ...outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}
	dtos := make([]OutboxMessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, fromDomain(m))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetPending locks the oldest unprocessed rows with FOR UPDATE SKIP LOCKED,
// so concurrent relays never pick the same message.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]outbox.Message, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("processed_at", at.UTC()).Error
}

func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID) error {
	return r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id.Bytes()).
		Update("attempts", gorm.Expr("attempts + 1")).Error
}

func fromDomain(m outbox.Message) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          m.ID.Bytes(),
		AggregateID: m.AggregateID.Bytes(),
		EventType:   m.EventType,
		Payload:     m.Payload,
		OccurredAt:  m.OccurredAt,
		ProcessedAt: m.ProcessedAt,
		Attempts:    m.Attempts,
	}
}

func toDomain(dto OutboxMessageDTO) (outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return outbox.Message{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return outbox.Message{}, err
	}
	return outbox.Message{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt.UTC(),
		ProcessedAt: dto.ProcessedAt,
		Attempts:    dto.Attempts,
	}, nil
}
