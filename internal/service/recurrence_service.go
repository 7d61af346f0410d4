package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/JamesR367/DigiDar/internal/dto"
	"github.com/JamesR367/DigiDar/internal/model"
	"github.com/JamesR367/DigiDar/internal/repository"
	pkgerrors "github.com/JamesR367/DigiDar/pkg/errors"
)

// ── 重复规则业务错误 ──

var (
	ErrEventNotFound      = errors.New("日程不存在")
	ErrRecurrenceExists   = errors.New("该日程已设置重复规则")
	ErrRecurrenceNotFound = errors.New("该日程未设置重复规则")
)

// RecurrenceService 重复规则业务接口
//
// 只负责存取规则字段并给出 RRULE 文本，不展开具体的发生时间
type RecurrenceService interface {
	Create(ctx context.Context, eventID int, req *dto.CreateRecurrenceRequest) (*dto.RecurrenceResponse, error)
	Get(ctx context.Context, eventID int) (*dto.RecurrenceResponse, error)
}

type recurrenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecurrenceService 创建 RecurrenceService 实例
func NewRecurrenceService(repo *repository.Repository, logger *zap.Logger) RecurrenceService {
	return &recurrenceService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *recurrenceService) Create(ctx context.Context, eventID int, req *dto.CreateRecurrenceRequest) (*dto.RecurrenceResponse, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}

	rec := &model.EventRecurrence{
		EventID:       eventID,
		Frequency:     model.Frequency(req.Frequency),
		EventInterval: 1,
		Count:         req.Count,
	}
	if req.EventInterval != nil {
		rec.EventInterval = *req.EventInterval
	}
	if req.DaysOfWeek != nil {
		days := datatypes.JSONSlice[int](req.DaysOfWeek)
		rec.DaysOfWeek = &days
	}
	if req.EndDate != nil {
		d := datatypes.Date(req.EndDate.Time())
		rec.EndDate = &d
	}

	rule, err := RRuleString(rec)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Recurrence.Create(ctx, rec); err != nil {
		switch {
		case pkgerrors.IsDuplicateKey(err):
			return nil, ErrRecurrenceExists
		case pkgerrors.IsForeignKey(err):
			// 查询之后日程被删除
			return nil, ErrEventNotFound
		}
		s.logger.Error("创建重复规则失败", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}

	return toRecurrenceResponse(rec, rule), nil
}

// ────────────────────── Get ──────────────────────

func (s *recurrenceService) Get(ctx context.Context, eventID int) (*dto.RecurrenceResponse, error) {
	rec, err := s.repo.Recurrence.GetByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if _, evErr := s.getEvent(ctx, eventID); evErr != nil {
				return nil, evErr
			}
			return nil, ErrRecurrenceNotFound
		}
		s.logger.Error("查询重复规则失败", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}

	rule, err := RRuleString(rec)
	if err != nil {
		s.logger.Warn("已存储的重复规则无法生成 RRULE", zap.Int("event_id", eventID), zap.Error(err))
	}

	return toRecurrenceResponse(rec, rule), nil
}

// ── 内部辅助方法 ──

func (s *recurrenceService) getEvent(ctx context.Context, eventID int) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("查询日程失败", zap.Int("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return event, nil
}

var frequencies = map[model.Frequency]rrule.Frequency{
	model.FrequencyDaily:   rrule.DAILY,
	model.FrequencyWeekly:  rrule.WEEKLY,
	model.FrequencyMonthly: rrule.MONTHLY,
	model.FrequencyYearly:  rrule.YEARLY,
}

// 下标与 days_of_week 取值一致：0=周一 … 6=周日
var weekdays = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// RRuleOption 将存储的规则字段转换为 rrule-go 选项（不含 DTSTART）
func RRuleOption(rec *model.EventRecurrence) (*rrule.ROption, error) {
	if !rec.Frequency.Valid() {
		return nil, fmt.Errorf("未知的重复频率 %q", rec.Frequency)
	}

	opt := &rrule.ROption{
		Freq:     frequencies[rec.Frequency],
		Interval: rec.EventInterval,
	}
	// RRULE 中 COUNT 与 UNTIL 互斥：两者都存储时只输出 COUNT
	switch {
	case rec.Count != nil:
		opt.Count = *rec.Count
	case rec.EndDate != nil:
		// UNTIL 包含 end_date 当天
		y, m, d := time.Time(*rec.EndDate).Date()
		opt.Until = time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
	}
	if rec.DaysOfWeek != nil {
		seen := make(map[int]bool, len(*rec.DaysOfWeek))
		for _, day := range *rec.DaysOfWeek {
			if day < 0 || day >= len(weekdays) {
				return nil, fmt.Errorf("无效的星期取值 %d", day)
			}
			if seen[day] {
				continue
			}
			seen[day] = true
			opt.Byweekday = append(opt.Byweekday, weekdays[day])
		}
	}

	if _, err := rrule.NewRRule(*opt); err != nil {
		return nil, fmt.Errorf("重复规则无效: %w", err)
	}
	return opt, nil
}

// RRuleString 返回 RFC 5545 RRULE 值，如 FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE
func RRuleString(rec *model.EventRecurrence) (string, error) {
	opt, err := RRuleOption(rec)
	if err != nil {
		return "", err
	}
	return opt.RRuleString(), nil
}

func toRecurrenceResponse(rec *model.EventRecurrence, rule string) *dto.RecurrenceResponse {
	resp := &dto.RecurrenceResponse{
		EventID:       rec.EventID,
		Frequency:     string(rec.Frequency),
		EventInterval: rec.EventInterval,
		Count:         rec.Count,
		RRule:         rule,
	}
	if rec.DaysOfWeek != nil {
		resp.DaysOfWeek = []int(*rec.DaysOfWeek)
	}
	if rec.EndDate != nil {
		d := dto.NewDate(time.Time(*rec.EndDate))
		resp.EndDate = &d
	}
	return resp
}
