package schedule

import (
	"errors"
	"fmt"

	"schedule-snap/backend/internal/model"
)

var (
	ErrInvalidTimeRange  = errors.New("课时结束时间早于开始时间")
	ErrDuplicatePeriodID = errors.New("同一天内课时 ID 重复")
	ErrEmptyTable        = errors.New("课表为空")
)

// Row 课表字面量中的一行，时间仍为字符串
type Row struct {
	ID      string
	Start   string
	End     string
	Subject string
	Teacher string
	Room    string
}

// WeekTable 一周（周一至周五）的静态课表
//
// 启动时构造一次，之后只读；所有读取方法返回副本，调用方无法改动内部数据。
type WeekTable struct {
	days  map[model.Weekday][]model.ClassPeriod
	order []model.Weekday
}

// NewWeekTable 由字面量构造课表，任何时间格式或区间错误都在此处立即失败
//
// 课时的书写顺序原样保留，乱序或重叠不视为错误。
func NewWeekTable(rows map[model.Weekday][]Row) (*WeekTable, error) {
	for day := range rows {
		if !day.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownWeekday, int(day))
		}
	}

	t := &WeekTable{days: make(map[model.Weekday][]model.ClassPeriod, len(rows))}

	for _, day := range model.Weekdays {
		dayRows, ok := rows[day]
		if !ok {
			continue
		}
		periods := make([]model.ClassPeriod, 0, len(dayRows))
		seen := make(map[string]bool, len(dayRows))
		for _, r := range dayRows {
			if seen[r.ID] {
				return nil, fmt.Errorf("%s 课时 %s: %w", day, r.ID, ErrDuplicatePeriodID)
			}
			seen[r.ID] = true

			start, err := ParseTimeOfDay(r.Start)
			if err != nil {
				return nil, fmt.Errorf("%s 课时 %s 开始时间: %w", day, r.ID, err)
			}
			end, err := ParseTimeOfDay(r.End)
			if err != nil {
				return nil, fmt.Errorf("%s 课时 %s 结束时间: %w", day, r.ID, err)
			}
			if end < start {
				return nil, fmt.Errorf("%s 课时 %s (%s-%s): %w", day, r.ID, r.Start, r.End, ErrInvalidTimeRange)
			}

			periods = append(periods, model.ClassPeriod{
				ID:      r.ID,
				Start:   start,
				End:     end,
				Subject: r.Subject,
				Teacher: r.Teacher,
				Room:    r.Room,
			})
		}
		t.days[day] = periods
		t.order = append(t.order, day)
	}

	if len(t.order) == 0 {
		return nil, ErrEmptyTable
	}

	return t, nil
}

// Days 课表包含的工作日（按周一至周五顺序）
func (t *WeekTable) Days() []model.Weekday {
	out := make([]model.Weekday, len(t.order))
	copy(out, t.order)
	return out
}

// DefaultDay 未识别选择器时的回退日：课表的第一天
func (t *WeekTable) DefaultDay() model.Weekday {
	return t.order[0]
}

// Day 返回某天课时的副本；课表中没有该天时 ok=false
func (t *WeekTable) Day(day model.Weekday) ([]model.ClassPeriod, bool) {
	periods, ok := t.days[day]
	if !ok {
		return nil, false
	}
	out := make([]model.ClassPeriod, len(periods))
	copy(out, periods)
	return out, true
}
