package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JamesR367/DigiDar/internal/dto"
	"github.com/JamesR367/DigiDar/internal/service"
	"github.com/JamesR367/DigiDar/pkg/response"
)

// RecurrenceHandler 重复规则 HTTP 处理器
type RecurrenceHandler struct {
	recurrenceSvc service.RecurrenceService
}

// NewRecurrenceHandler 创建 RecurrenceHandler
func NewRecurrenceHandler(recurrenceSvc service.RecurrenceService) *RecurrenceHandler {
	return &RecurrenceHandler{recurrenceSvc: recurrenceSvc}
}

// CreateRecurrence 为日程设置重复规则
// POST /events/:id/recurrence
func (h *RecurrenceHandler) CreateRecurrence(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	req, err := dto.DecodeJSON[dto.CreateRecurrenceRequest](c)
	if err != nil {
		writeDecodeError(c, err)
		return
	}

	rec, err := h.recurrenceSvc.Create(c.Request.Context(), eventID, req)
	if err != nil {
		h.handleRecurrenceError(c, err)
		return
	}

	response.Created(c, rec)
}

// GetRecurrence 获取日程的重复规则
// GET /events/:id/recurrence
func (h *RecurrenceHandler) GetRecurrence(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	rec, err := h.recurrenceSvc.Get(c.Request.Context(), eventID)
	if err != nil {
		h.handleRecurrenceError(c, err)
		return
	}

	response.OK(c, rec)
}

// eventIDParam 解析路径中的日程 ID，失败时写入 400
func eventIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "日程ID无效")
		return 0, false
	}
	return id, true
}

// handleRecurrenceError 统一处理重复规则业务错误
func (h *RecurrenceHandler) handleRecurrenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 30001, "日程不存在")
	case errors.Is(err, service.ErrRecurrenceExists):
		response.Conflict(c, 30002, "该日程已设置重复规则")
	case errors.Is(err, service.ErrRecurrenceNotFound):
		response.NotFound(c, 30003, "该日程未设置重复规则")
	default:
		response.InternalError(c)
	}
}
