package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JamesR367/DigiDar/internal/dto"
	"github.com/JamesR367/DigiDar/internal/service"
	"github.com/JamesR367/DigiDar/pkg/response"
)

// EventHandler 日程模块 HTTP 处理器
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// CreateEvent 创建日程
// POST /events/
func (h *EventHandler) CreateEvent(c *gin.Context) {
	req, err := dto.DecodeJSON[dto.CreateEventRequest](c)
	if err != nil {
		writeDecodeError(c, err)
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unprocessable(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, event)
}

// ListEvents 日程列表
// GET /events/
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, events)
}
