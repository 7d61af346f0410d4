package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JamesR367/DigiDar/internal/model"
)

// EventRepository 日程数据访问接口
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id int) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	// ListWithRecurrence 附带重复规则，按 id 排序（导出用）
	ListWithRecurrence(ctx context.Context) ([]model.Event, error)
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return conn(ctx, r.db).Omit("Recurrence").Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id int) (*model.Event, error) {
	var event model.Event
	err := conn(ctx, r.db).
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := conn(ctx, r.db).Find(&events).Error
	return events, err
}

func (r *eventRepo) ListWithRecurrence(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := conn(ctx, r.db).
		Preload("Recurrence").
		Order("id ASC").
		Find(&events).Error
	return events, err
}
