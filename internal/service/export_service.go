package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"schedule-snap/backend/internal/model"
	"schedule-snap/backend/internal/repository"
	"schedule-snap/backend/pkg/clock"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

// ExportService 导出业务接口
//
// 两种格式都以一周课表为内容：
//   - Excel：每个工作日一个 Sheet
//   - iCalendar：每节课一个按周重复的事件，锚定在参考时区的本周
type ExportService interface {
	// ExportXLSX 导出一周课表为 Excel
	ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportICS 导出一周课表为 .ics 日历
	ExportICS(ctx context.Context) ([]byte, string, error)
}

type exportService struct {
	repo    *repository.Repository
	clock   clock.Clock
	loc     *time.Location
	baseURL string
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
// baseURL 为对外访问地址，用于日历的订阅链接；为空时不写 URL 属性
func NewExportService(repo *repository.Repository, clk clock.Clock, loc *time.Location, baseURL string, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, clock: clk, loc: loc, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

const (
	xlsxFilename = "schedule-week.xlsx"
	icsFilename  = "schedule-week.ics"
	icsProductID = "-//ScheduleSnap//Weekly Schedule//EN"
	icsExportURL = "/api/v1/export/week.ics"

	// 本地时间（不带 Z），配合 TZID 使用
	icsLocalLayout = "20060102T150405"
)

// iCalendar BYDAY 取值
var byDay = map[model.Weekday]string{
	model.Monday:    "MO",
	model.Tuesday:   "TU",
	model.Wednesday: "WE",
	model.Thursday:  "TH",
	model.Friday:    "FR",
}

// ═══════════════════════════════════════════════════════════
// ExportXLSX
// ═══════════════════════════════════════════════════════════
//
// 每个 Sheet：
//   - 表头：# / Time / Subject / Teacher / Room
//   - 数据行：按课表书写顺序

func (s *exportService) ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	days := s.repo.Period.Days(ctx)

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		s.logger.Error("创建 Excel 样式失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	headers := []string{"#", "Time", "Subject", "Teacher", "Room"}

	for i, day := range days {
		sheetName := day.String()
		if i == 0 {
			// 复用默认 Sheet1
			if err := f.SetSheetName("Sheet1", sheetName); err != nil {
				s.logger.Error("重命名 Sheet 失败", zap.Error(err))
				return nil, "", ErrExportGenerateFail
			}
		} else if _, err := f.NewSheet(sheetName); err != nil {
			s.logger.Error("创建 Sheet 失败", zap.String("sheet", sheetName), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}

		f.SetColWidth(sheetName, "A", "A", 6)
		f.SetColWidth(sheetName, "B", "B", 22)
		f.SetColWidth(sheetName, "C", "C", 40)
		f.SetColWidth(sheetName, "D", "E", 24)

		for c, h := range headers {
			f.SetCellValue(sheetName, cell(colName(c), 1), h)
		}
		f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

		periods, err := s.repo.Period.ListByDay(ctx, day)
		if err != nil {
			s.logger.Error("读取课表失败", zap.String("day", sheetName), zap.Error(err))
			return nil, "", err
		}

		for r, p := range periods {
			row := r + 2
			values := []string{
				p.ID,
				p.Start.Format12h() + " - " + p.End.Format12h(),
				p.Subject,
				p.Teacher,
				p.Room,
			}
			for c, v := range values {
				f.SetCellValue(sheetName, cell(colName(c), row), v)
			}
		}
	}
	f.SetActiveSheet(0)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, xlsxFilename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS
// ═══════════════════════════════════════════════════════════
//
// 事件 UID 由 工作日/课时 ID 派生，重复导出时保持稳定，
// 日历客户端重新导入会覆盖而不是重复添加。
//
// DTSTART/DTEND 写成带 TZID 的本地时间：按周重复的规则以参考时区的墙钟展开，
// 夏令时切换后课时不会整体偏移一小时。

func (s *exportService) ExportICS(ctx context.Context) ([]byte, string, error) {
	now := s.clock.Now().In(s.loc)
	monday := mondayOf(now)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("ScheduleSnap")
	cal.SetXWRTimezone(s.loc.String())
	if s.baseURL != "" {
		cal.SetUrl(s.baseURL + icsExportURL)
	}

	for _, day := range s.repo.Period.Days(ctx) {
		periods, err := s.repo.Period.ListByDay(ctx, day)
		if err != nil {
			s.logger.Error("读取课表失败", zap.String("day", day.String()), zap.Error(err))
			return nil, "", err
		}

		date := monday.AddDate(0, 0, int(day)-int(model.Monday))
		for _, p := range periods {
			uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("schedule-snap/%s/%s", day, p.ID)))

			event := cal.AddEvent(uid.String())
			event.SetDtStampTime(now)
			event.SetProperty(ics.ComponentPropertyDtStart, atTimeOfDay(date, p.Start).Format(icsLocalLayout), ics.WithTZID(s.loc.String()))
			event.SetProperty(ics.ComponentPropertyDtEnd, atTimeOfDay(date, p.End).Format(icsLocalLayout), ics.WithTZID(s.loc.String()))
			event.SetSummary(p.Subject)
			if room := strings.TrimSpace(p.Room); room != "" && room != "N/A" {
				event.SetLocation(room)
			}
			if teacher := strings.TrimSpace(p.Teacher); teacher != "" && teacher != "N/A" {
				event.SetDescription("Teacher: " + teacher)
			}
			event.AddRrule("FREQ=WEEKLY;BYDAY=" + byDay[day])
		}
	}

	return []byte(cal.Serialize()), icsFilename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// mondayOf 所在周的周一零点（周日视为上一周的最后一天）
func mondayOf(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6
	}
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

func atTimeOfDay(date time.Time, tod model.TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, date.Location())
}
