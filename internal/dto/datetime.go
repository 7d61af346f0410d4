package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// DateTimeLayout 时间的输入格式（不带时区）
const DateTimeLayout = "2006-01-02T15:04:05"

// dateTimeOutputLayout 输出格式：整秒时与 DateTimeLayout 相同，有小数秒时原样带出
const dateTimeOutputLayout = "2006-01-02T15:04:05.999999999"

// DateLayout 日期的输入输出格式
const DateLayout = "2006-01-02"

// 带时区偏移的输入统一换算为 UTC，不做其他时区处理
var dateTimeParser = &now.Config{
	TimeLocation: time.UTC,
	TimeFormats: []string{
		DateTimeLayout,
		"2006-01-02T15:04:05.999999999",
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	},
}

// TimeParseError 时间字段解析失败
type TimeParseError struct {
	Value  string
	Layout string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("无法解析时间 %q，期望格式 %s", e.Value, e.Layout)
}

// ParseDateTime 解析请求中的日期时间
func ParseDateTime(s string) (time.Time, error) {
	t, err := dateTimeParser.Parse(s)
	if err != nil {
		return time.Time{}, &TimeParseError{Value: s, Layout: DateTimeLayout}
	}
	return t.UTC(), nil
}

// DateTime JSON 中形如 2024-01-01T09:00:00 的时间
type DateTime time.Time

// NewDateTime 由 time.Time 构造
func NewDateTime(t time.Time) DateTime { return DateTime(t.UTC()) }

// Time 返回 time.Time
func (d DateTime) Time() time.Time { return time.Time(d) }

// String 格式化为 2006-01-02T15:04:05[.fraction]
func (d DateTime) String() string { return time.Time(d).Format(dateTimeOutputLayout) }

// MarshalJSON 实现 json.Marshaler
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON 实现 json.Unmarshaler
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &TimeParseError{Value: string(b), Layout: DateTimeLayout}
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

// Date JSON 中形如 2024-01-31 的日期
type Date time.Time

// NewDate 由 time.Time 构造，丢弃时分秒
func NewDate(t time.Time) Date {
	y, m, day := t.Date()
	return Date(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// Time 返回 time.Time
func (d Date) Time() time.Time { return time.Time(d) }

// String 按 DateLayout 格式化
func (d Date) String() string { return time.Time(d).Format(DateLayout) }

// MarshalJSON 实现 json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON 实现 json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &TimeParseError{Value: string(b), Layout: DateLayout}
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return &TimeParseError{Value: s, Layout: DateLayout}
	}
	*d = Date(t)
	return nil
}
