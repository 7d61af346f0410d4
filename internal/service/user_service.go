package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/JamesR367/DigiDar/internal/dto"
	"github.com/JamesR367/DigiDar/internal/model"
	"github.com/JamesR367/DigiDar/internal/repository"
	pkgerrors "github.com/JamesR367/DigiDar/pkg/errors"
)

// ── 用户模块业务错误 ──

var (
	ErrUsernameTaken = errors.New("用户名已存在")
)

// UserService 用户业务接口
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &model.User{Username: req.Username}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if pkgerrors.IsDuplicateKey(err) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("创建用户失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserResponse(&users[i]))
	}
	return result, nil
}

func toUserResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID, Username: u.Username}
}
