package model

import "gorm.io/datatypes"

// Frequency 重复频率，对应 PostgreSQL 枚举 recurrence_frequency
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid 是否为已定义的频率
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// EventRecurrence 日程重复规则表 — 对应 event_recurrence
// 只存储规则字段，不做展开
type EventRecurrence struct {
	EventID       int                       `gorm:"primaryKey;autoIncrement:false"     json:"event_id"`
	Frequency     Frequency                 `gorm:"type:recurrence_frequency"          json:"frequency"`
	EventInterval int                       `gorm:"column:event_interval;not null;default:1" json:"event_interval"`
	DaysOfWeek    *datatypes.JSONSlice[int] `gorm:"column:days_of_week"                json:"days_of_week,omitempty"` // 0=周一 … 6=周日
	EndDate       *datatypes.Date           `gorm:"column:end_date;type:date"          json:"end_date,omitempty"`
	Count         *int                      `gorm:"column:count"                       json:"count,omitempty"`
}

// TableName 指定表名
func (EventRecurrence) TableName() string { return "event_recurrence" }
