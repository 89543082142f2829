package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"schedule-snap/backend/internal/model"
)

// ErrUnknownWeekday 日期选择器不是受支持的五个工作日之一
var ErrUnknownWeekday = errors.New("未知的星期")

// ParseWeekday 解析日期选择器（忽略大小写，支持全称与三字母缩写，如 "Mon"）
func ParseWeekday(s string) (model.Weekday, error) {
	// Caser 有内部状态，不能跨 goroutine 共享
	name := cases.Title(language.English).String(strings.TrimSpace(s))
	if name == "" {
		return 0, fmt.Errorf("%w: 空字符串", ErrUnknownWeekday)
	}
	for _, d := range model.Weekdays {
		full := d.String()
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// SelectWeekday 解析日期选择器；无法识别时显式回退到 def 并返回 fallback=true
func SelectWeekday(s string, def model.Weekday) (day model.Weekday, fallback bool) {
	d, err := ParseWeekday(s)
	if err != nil {
		return def, true
	}
	return d, false
}

// WeekdayOf 将日历星期映射到课表工作日，周末返回 ok=false
func WeekdayOf(wd time.Weekday) (model.Weekday, bool) {
	if wd == time.Saturday || wd == time.Sunday {
		return 0, false
	}
	return model.Weekday(wd), true
}
