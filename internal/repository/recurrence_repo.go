package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JamesR367/DigiDar/internal/model"
)

// RecurrenceRepository 重复规则数据访问接口
type RecurrenceRepository interface {
	Create(ctx context.Context, rec *model.EventRecurrence) error
	GetByEventID(ctx context.Context, eventID int) (*model.EventRecurrence, error)
}

type recurrenceRepo struct {
	db *gorm.DB
}

// NewRecurrenceRepo 创建 RecurrenceRepository 实例
func NewRecurrenceRepo(db *gorm.DB) RecurrenceRepository {
	return &recurrenceRepo{db: db}
}

func (r *recurrenceRepo) Create(ctx context.Context, rec *model.EventRecurrence) error {
	return conn(ctx, r.db).Create(rec).Error
}

func (r *recurrenceRepo) GetByEventID(ctx context.Context, eventID int) (*model.EventRecurrence, error) {
	var rec model.EventRecurrence
	err := conn(ctx, r.db).
		Where("event_id = ?", eventID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
