package dto

// ── 课表模块 DTO ──

// ScheduleQuery 课表查询参数
type ScheduleQuery struct {
	Day string `form:"day"` // 为空表示参考时区的今天；无法识别时回退到默认日
	At  string `form:"at"`  // 固定预览时刻，如 "08:40" 或 "8:40 AM"；为空使用当前时间
}

// Period status 取值
const (
	PeriodStatusCurrent = "current"
	PeriodStatusNext    = "next"
)

// PeriodResponse 课时信息
type PeriodResponse struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Room      string `json:"room"`
	StartTime string `json:"start_time"` // "08:45"
	EndTime   string `json:"end_time"`   // "09:25"
	TimeRange string `json:"time_range"` // "8:45 AM - 9:25 AM"
	Status    string `json:"status,omitempty"`
}

// NowResponse 当前课 / 下一节课
type NowResponse struct {
	Day              string          `json:"day"`
	Fallback         bool            `json:"fallback"` // 日期选择器无法识别或今天是周末，已回退到默认日
	Now              string          `json:"now"`      // 解析所用时刻 "15:04"
	Clock            string          `json:"clock"`    // 展示用时钟 "8:45:12 AM"
	Current          *PeriodResponse `json:"current"`
	Next             *PeriodResponse `json:"next"`
	MinutesRemaining *int            `json:"minutes_remaining,omitempty"`
	MinutesUntilNext *int            `json:"minutes_until_next,omitempty"`
}

// DayScheduleResponse 某一天的完整课表
type DayScheduleResponse struct {
	NowResponse
	PrevDay *string          `json:"prev_day"`
	NextDay *string          `json:"next_day"`
	Periods []PeriodResponse `json:"periods"`
}

// DaySummary 周视图中的一天
type DaySummary struct {
	Day     string           `json:"day"`
	Periods []PeriodResponse `json:"periods"`
}

// WeekResponse 一周课表
type WeekResponse struct {
	Timezone string       `json:"timezone"`
	Days     []DaySummary `json:"days"`
}
