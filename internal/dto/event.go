package dto

// ── 日程模块 DTO ──

// CreateEventRequest 创建日程请求
// all_day 缺省为 false；不校验结束时间晚于开始时间
type CreateEventRequest struct {
	Title         string    `json:"title"          binding:"required,max=50"`
	StartDatetime *DateTime `json:"start_datetime" binding:"required"`
	EndDatetime   *DateTime `json:"end_datetime"   binding:"required"`
	AllDay        *bool     `json:"all_day"`
	UserID        int       `json:"user_id"        binding:"required"`
}

// EventResponse 日程信息响应
type EventResponse struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	StartDatetime DateTime `json:"start_datetime"`
	EndDatetime   DateTime `json:"end_datetime"`
	AllDay        bool     `json:"all_day"`
	UserID        int      `json:"user_id"`
}
