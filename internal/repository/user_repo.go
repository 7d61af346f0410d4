package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JamesR367/DigiDar/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return conn(ctx, r.db).Create(user).Error
}

// List 返回全部用户，顺序由数据库决定
func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := conn(ctx, r.db).Find(&users).Error
	return users, err
}
