package dto

// ── 用户模块 DTO ──

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=50"`
}

// UserResponse 用户信息响应
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
