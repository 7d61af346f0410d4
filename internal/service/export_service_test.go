package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/JamesR367/DigiDar/internal/dto"
	"github.com/JamesR367/DigiDar/internal/model"
)

// ── 测试辅助 ──

func setupTestExportService(t *testing.T) (ExportService, *mockRepos) {
	t.Helper()
	repo, mocks := newMockRepository()
	svc := &exportService{
		repo:   repo,
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
	return svc, mocks
}

func seedEvents(t *testing.T, mocks *mockRepos) {
	t.Helper()
	ctx := context.Background()
	u := seedUser(t, mocks, "alice")

	timed := &model.Event{
		Title:         "评审会",
		StartDatetime: time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
		UserID:        u.ID,
	}
	allDay := &model.Event{
		Title:         "团建",
		StartDatetime: time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC),
		AllDay:        true,
		UserID:        u.ID,
	}
	for _, e := range []*model.Event{timed, allDay} {
		if err := mocks.events.Create(ctx, e); err != nil {
			t.Fatalf("创建日程失败: %v", err)
		}
	}
	if err := mocks.recs.Create(ctx, &model.EventRecurrence{
		EventID: timed.ID, Frequency: model.FrequencyWeekly, EventInterval: 1,
	}); err != nil {
		t.Fatalf("创建重复规则失败: %v", err)
	}
}

// ── ExportICS 测试 ──

func TestExportService_ExportICS(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	seedEvents(t, mocks)

	buf, filename, err := svc.ExportICS(context.Background())
	if err != nil {
		t.Fatalf("ExportICS 应成功: %v", err)
	}
	if filename != "digidar.ics" {
		t.Errorf("文件名不符: %s", filename)
	}

	content := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"UID:event-1@digidar",
		"UID:event-2@digidar",
		"SUMMARY:评审会",
		"DTSTART:20250203T090000Z",
		"RRULE:FREQ=WEEKLY",
		"DTSTART;VALUE=DATE:20250207",
		"DTEND;VALUE=DATE:20250208",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("ICS 缺少 %q", want)
		}
	}
	if n := strings.Count(content, "BEGIN:VEVENT"); n != 2 {
		t.Errorf("期望 2 个 VEVENT，实际 %d", n)
	}
	if n := strings.Count(content, "RRULE:"); n != 1 {
		t.Errorf("期望 1 条 RRULE，实际 %d", n)
	}
}

func TestExportService_ExportICS_CountAndEndDate(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	ctx := context.Background()
	u := seedUser(t, mocks, "bob")

	ev := &model.Event{
		Title:         "晨跑",
		StartDatetime: time.Date(2024, 2, 5, 7, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2024, 2, 5, 8, 0, 0, 0, time.UTC),
		UserID:        u.ID,
	}
	if err := mocks.events.Create(ctx, ev); err != nil {
		t.Fatalf("创建日程失败: %v", err)
	}
	count := 5
	end := datatypes.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err := mocks.recs.Create(ctx, &model.EventRecurrence{
		EventID: ev.ID, Frequency: model.FrequencyWeekly, EventInterval: 1, Count: &count, EndDate: &end,
	}); err != nil {
		t.Fatalf("创建重复规则失败: %v", err)
	}

	buf, _, err := svc.ExportICS(ctx)
	if err != nil {
		t.Fatalf("ExportICS 应成功: %v", err)
	}

	var rrule string
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "RRULE:") {
			rrule = line
		}
	}
	if !strings.Contains(rrule, "COUNT=5") {
		t.Errorf("RRULE 应包含 COUNT: %q", rrule)
	}
	if strings.Contains(rrule, "UNTIL=") {
		t.Errorf("RRULE 不应同时包含 COUNT 与 UNTIL: %q", rrule)
	}
}

func TestExportService_ExportICS_Empty(t *testing.T) {
	svc, _ := setupTestExportService(t)

	buf, _, err := svc.ExportICS(context.Background())
	if err != nil {
		t.Fatalf("ExportICS 应成功: %v", err)
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Error("无日程时不应输出 VEVENT")
	}
}

func TestExportService_ListError(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	dbErr := errors.New("boom")
	mocks.events.listErr = dbErr

	if _, _, err := svc.ExportICS(context.Background()); !errors.Is(err, dbErr) {
		t.Errorf("ExportICS 期望返回查询错误，实际: %v", err)
	}
	if _, _, err := svc.ExportXLSX(context.Background()); !errors.Is(err, dbErr) {
		t.Errorf("ExportXLSX 期望返回查询错误，实际: %v", err)
	}
}

func TestAllDayEnd(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 2, d, 0, 0, 0, 0, time.UTC) }

	if got := allDayEnd(day(7), day(9).Add(15*time.Hour)); !got.Equal(day(10)) {
		t.Errorf("期望 2/10，实际 %v", got)
	}
	// 结束早于开始时按单日处理
	if got := allDayEnd(day(7), day(5)); !got.Equal(day(8)) {
		t.Errorf("期望 2/8，实际 %v", got)
	}
}

// ── ExportXLSX 测试 ──

func TestExportService_ExportXLSX(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	seedEvents(t, mocks)

	buf, filename, err := svc.ExportXLSX(context.Background())
	if err != nil {
		t.Fatalf("ExportXLSX 应成功: %v", err)
	}
	if filename != "digidar_events.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("无法读取生成的 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("日程")
	if err != nil {
		t.Fatalf("读取 Sheet 失败: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("期望 1 行表头 + 2 行数据，实际 %d 行", len(rows))
	}
	if rows[0][1] != "标题" {
		t.Errorf("表头不符: %v", rows[0])
	}
	if rows[1][1] != "评审会" || rows[1][2] != dto.NewDateTime(time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)).String() {
		t.Errorf("第一行数据不符: %v", rows[1])
	}
	if !strings.HasPrefix(rows[1][6], "FREQ=WEEKLY") {
		t.Errorf("重复规则列不符: %v", rows[1])
	}
	if rows[2][4] != "是" {
		t.Errorf("全天列不符: %v", rows[2])
	}
}
