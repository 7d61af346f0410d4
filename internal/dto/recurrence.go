package dto

// ── 重复规则 DTO ──

// CreateRecurrenceRequest 为日程设置重复规则
// event_id 取自路径参数
type CreateRecurrenceRequest struct {
	Frequency     string `json:"frequency"      binding:"required,oneof=daily weekly monthly yearly"`
	EventInterval *int   `json:"event_interval" binding:"omitempty,min=1"`
	DaysOfWeek    []int  `json:"days_of_week"   binding:"omitempty,unique,dive,min=0,max=6"`
	EndDate       *Date  `json:"end_date"`
	Count         *int   `json:"count"          binding:"omitempty,min=1"`
}

// RecurrenceResponse 重复规则响应
// RRule 为存储字段的 RFC 5545 文本表示，不含 DTSTART
type RecurrenceResponse struct {
	EventID       int    `json:"event_id"`
	Frequency     string `json:"frequency"`
	EventInterval int    `json:"event_interval"`
	DaysOfWeek    []int  `json:"days_of_week"`
	EndDate       *Date  `json:"end_date"`
	Count         *int   `json:"count"`
	RRule         string `json:"rrule"`
}
