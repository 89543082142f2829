package model

import "fmt"

// TimeOfDay 一天中的时刻（自零点起的分钟数，无日期、无时区）
type TimeOfDay int

// NewTimeOfDay 由时、分构造 TimeOfDay，调用方负责保证范围合法
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Hour 小时（0-23）
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute 分钟（0-59）
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String 24 小时制 "15:04"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12h 12 小时制展示格式，如 "8:45 AM"
func (t TimeOfDay) Format12h() string {
	h := t.Hour()
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute(), suffix)
}

// Weekday 课表支持的工作日（1=周一 … 5=周五，无周末）
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays 按顺序列出全部工作日
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Valid 是否为受支持的工作日
func (d Weekday) Valid() bool { return d >= Monday && d <= Friday }

// String 英文全称，与前端日期选择器的字面量一致
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ClassPeriod 课表中的一节课（值对象，构造后不可变）
type ClassPeriod struct {
	ID      string    `json:"id"` // 同一天内唯一
	Start   TimeOfDay `json:"start"`
	End     TimeOfDay `json:"end"`
	Subject string    `json:"subject"`
	Teacher string    `json:"teacher"` // 可能是 "Cafeteria"、"Chapel" 之类的占位
	Room    string    `json:"room"`    // 可能为空或 "N/A"
}

// Contains 时刻是否落在课时区间内（两端闭区间）
func (p ClassPeriod) Contains(t TimeOfDay) bool {
	return p.Start <= t && t <= p.End
}
