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

// ── 日程模块业务错误 ──

var (
	// ErrUserNotFound user_id 引用的用户不存在
	ErrUserNotFound = errors.New("用户不存在")
)

// EventService 日程业务接口
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	List(ctx context.Context) ([]dto.EventResponse, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	event := &model.Event{
		Title:         req.Title,
		StartDatetime: req.StartDatetime.Time(),
		EndDatetime:   req.EndDatetime.Time(),
		UserID:        req.UserID,
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}

	// 用户是否存在交给外键约束判断
	if err := s.repo.Event.Create(ctx, event); err != nil {
		if pkgerrors.IsForeignKey(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("创建日程失败", zap.Int("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	return toEventResponse(event), nil
}

func (s *eventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.repo.Event.List(ctx)
	if err != nil {
		s.logger.Error("列出日程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *toEventResponse(&events[i]))
	}
	return result, nil
}

func toEventResponse(e *model.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		StartDatetime: dto.NewDateTime(e.StartDatetime),
		EndDatetime:   dto.NewDateTime(e.EndDatetime),
		AllDay:        e.AllDay,
		UserID:        e.UserID,
	}
}
