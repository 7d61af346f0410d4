package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDateTime_Layouts(t *testing.T) {
	want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	cases := []string{
		"2024-01-01T09:00:00",
		"2024-01-01 09:00:00",
		"2024-01-01T09:00",
		"2024-01-01T09:00:00Z",
		"2024-01-01T17:00:00+08:00",
	}
	for _, in := range cases {
		got, err := ParseDateTime(in)
		if err != nil {
			t.Errorf("ParseDateTime(%q) 失败: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDateTime(%q) = %v，期望 %v", in, got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseDateTime(%q) 应返回 UTC", in)
		}
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	_, err := ParseDateTime("not-a-date")
	var perr *TimeParseError
	if !errors.As(err, &perr) {
		t.Fatalf("期望 *TimeParseError，实际: %v", err)
	}
	if perr.Value != "not-a-date" {
		t.Errorf("Value 不符: %q", perr.Value)
	}
}

func TestDateTime_JSONRoundTrip(t *testing.T) {
	var v struct {
		At DateTime `json:"at"`
	}
	if err := json.Unmarshal([]byte(`{"at":"2024-03-05T18:30:00"}`), &v); err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	if string(out) != `{"at":"2024-03-05T18:30:00"}` {
		t.Errorf("输出不符: %s", out)
	}
}

func TestDateTime_UnmarshalNonString(t *testing.T) {
	var d DateTime
	err := json.Unmarshal([]byte(`12345`), &d)
	var perr *TimeParseError
	if !errors.As(err, &perr) {
		t.Errorf("期望 *TimeParseError，实际: %v", err)
	}
}

func TestDate_JSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-12-31"`), &d); err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if d.String() != "2024-12-31" {
		t.Errorf("String() = %s", d.String())
	}

	if err := json.Unmarshal([]byte(`"2024-12-31T10:00:00"`), &d); err == nil {
		t.Error("日期字段不应接受时间")
	}
}

func TestNewDate_Truncates(t *testing.T) {
	d := NewDate(time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC))
	if !d.Time().Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("NewDate 未去掉时分秒: %v", d.Time())
	}
}

func TestDateTime_FractionalSecondsEchoed(t *testing.T) {
	var v struct {
		At DateTime `json:"at"`
	}
	if err := json.Unmarshal([]byte(`{"at":"2024-01-01T09:00:00.123"}`), &v); err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if v.At.Time().Nanosecond() != 123000000 {
		t.Errorf("小数秒丢失: %v", v.At.Time())
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	if string(out) != `{"at":"2024-01-01T09:00:00.123"}` {
		t.Errorf("输出不符: %s", out)
	}
}
