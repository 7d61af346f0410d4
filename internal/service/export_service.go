package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JamesR367/DigiDar/internal/dto"
	"github.com/JamesR367/DigiDar/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

const (
	icsProductID = "-//DigiDar//Calendar//ZH"
	icsUIDDomain = "digidar"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出全部日程，不分页、不按用户过滤
//   - 带重复规则的日程在 ICS 中输出 RRULE，由客户端展开
//   - 文件内容以 bytes.Buffer 返回，由 Handler 层设置响应头
type ExportService interface {
	// ExportICS 导出为 iCalendar (.ics)
	ExportICS(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportXLSX 导出为 Excel (.xlsx)
	ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportICS — 导出为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个日程一个 VEVENT：
//   - UID: event-<id>@digidar
//   - 全天日程使用 VALUE=DATE，结束日期取次日（DTEND 不含）
//   - 有重复规则时追加 RRULE

func (s *exportService) ExportICS(ctx context.Context) (*bytes.Buffer, string, error) {
	events, err := s.repo.Event.ListWithRecurrence(ctx)
	if err != nil {
		s.logger.Error("查询日程失败", zap.Error(err))
		return nil, "", err
	}

	stamp := s.now().UTC()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	for i := range events {
		ev := &events[i]

		vevent := cal.AddEvent(fmt.Sprintf("event-%d@%s", ev.ID, icsUIDDomain))
		vevent.SetDtStampTime(stamp)
		vevent.SetSummary(ev.Title)
		if ev.AllDay {
			vevent.SetAllDayStartAt(ev.StartDatetime)
			vevent.SetAllDayEndAt(allDayEnd(ev.StartDatetime, ev.EndDatetime))
		} else {
			vevent.SetStartAt(ev.StartDatetime)
			vevent.SetEndAt(ev.EndDatetime)
		}

		if ev.Recurrence != nil {
			// 规则异常时仍导出单次日程
			if rule, err := RRuleString(ev.Recurrence); err == nil {
				vevent.AddRrule(rule)
			} else {
				s.logger.Warn("跳过无效的重复规则", zap.Int("event_id", ev.ID), zap.Error(err))
			}
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "digidar.ics", nil
}

// allDayEnd 全天日程的 DTEND：结束日期的次日，且不早于开始日期的次日
func allDayEnd(start, end time.Time) time.Time {
	s := dto.NewDate(start).Time()
	e := dto.NewDate(end).Time()
	if e.Before(s) {
		e = s
	}
	return e.AddDate(0, 0, 1)
}

// ═══════════════════════════════════════════════════════════
// ExportXLSX — 导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 表头: | ID | 标题 | 开始时间 | 结束时间 | 全天 | 用户ID | 重复规则 |

var xlsxHeaders = []string{"ID", "标题", "开始时间", "结束时间", "全天", "用户ID", "重复规则"}

func (s *exportService) ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	events, err := s.repo.Event.ListWithRecurrence(ctx)
	if err != nil {
		s.logger.Error("查询日程失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "日程"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 28)
	f.SetColWidth(sheetName, "C", "D", 22)
	f.SetColWidth(sheetName, "E", "F", 10)
	f.SetColWidth(sheetName, "G", "G", 40)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	for i, h := range xlsxHeaders {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(xlsxHeaders)-1), 1), headerStyle)

	// 数据行
	row := 2
	for i := range events {
		ev := &events[i]

		rule := ""
		if ev.Recurrence != nil {
			rule, _ = RRuleString(ev.Recurrence)
		}
		allDay := "否"
		if ev.AllDay {
			allDay = "是"
		}

		values := []interface{}{
			ev.ID,
			ev.Title,
			dto.NewDateTime(ev.StartDatetime).String(),
			dto.NewDateTime(ev.EndDatetime).String(),
			allDay,
			ev.UserID,
			rule,
		}
		for col, v := range values {
			f.SetCellValue(sheetName, cell(colName(col), row), v)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "digidar_events.xlsx", nil
}

// ── 辅助函数 ──

// colName 0 起始列号 → 列名
func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
