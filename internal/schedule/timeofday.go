package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"schedule-snap/backend/internal/model"
)

// ErrInvalidTimeFormat 时间字符串无法解析为 时:分
var ErrInvalidTimeFormat = errors.New("时间格式无效")

// ParseTimeOfDay 解析课表中的时刻字符串
//
// 支持两种写法：
//   - 24 小时制 "08:45" / "8:45"
//   - 12 小时制 "08:45 AM" / "1:22 pm"
func ParseTimeOfDay(s string) (model.TimeOfDay, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("%w: 空字符串", ErrInvalidTimeFormat)
	}

	clock, meridiem := raw, ""
	if i := strings.LastIndexByte(raw, ' '); i > 0 {
		clock = strings.TrimSpace(raw[:i])
		meridiem = strings.ToUpper(raw[i+1:])
		if meridiem != "AM" && meridiem != "PM" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	switch meridiem {
	case "":
		if hour > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}

	return model.NewTimeOfDay(hour, minute), nil
}

// isDigits 仅允许 ASCII 数字，Atoi 接受的正负号不算合法时刻
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// TimeOfDayFrom 截取时间点的时、分（秒被忽略），时区由调用方预先转换
func TimeOfDayFrom(t time.Time) model.TimeOfDay {
	return model.NewTimeOfDay(t.Hour(), t.Minute())
}
