package model

import "time"

// Event 日程表 — 对应 events
// 不校验 end_datetime >= start_datetime
type Event struct {
	ID            int       `gorm:"primaryKey;autoIncrement"                 json:"id"`
	Title         string    `gorm:"type:varchar(50);not null"                json:"title"`
	StartDatetime time.Time `gorm:"column:start_datetime;type:timestamp;not null" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"column:end_datetime;type:timestamp;not null"   json:"end_datetime"`
	AllDay        bool      `gorm:"not null"                                 json:"all_day"`
	UserID        int       `gorm:"not null"                                 json:"user_id"`

	// 关联（删除日程级联删除重复规则）
	Recurrence *EventRecurrence `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"recurrence,omitempty"`
}

// TableName 指定表名
func (Event) TableName() string { return "events" }
