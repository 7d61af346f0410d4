package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JamesR367/DigiDar/internal/dto"
	"github.com/JamesR367/DigiDar/internal/service"
	"github.com/JamesR367/DigiDar/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// CreateUser 创建用户
// POST /users/
func (h *UserHandler) CreateUser(c *gin.Context) {
	req, err := dto.DecodeJSON[dto.CreateUserRequest](c)
	if err != nil {
		writeDecodeError(c, err)
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.Conflict(c, 20002, "用户名已存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// ListUsers 用户列表
// GET /users/
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}
