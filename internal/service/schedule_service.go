package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"schedule-snap/backend/internal/dto"
	"schedule-snap/backend/internal/model"
	"schedule-snap/backend/internal/repository"
	"schedule-snap/backend/internal/schedule"
	"schedule-snap/backend/pkg/clock"
)

// ScheduleService 课表业务接口
//
// 课表本身是启动时构造的只读数据；"当前时间"由注入的 Clock 提供，
// 服务自身不保存任何可变状态。
type ScheduleService interface {
	// Days 课表包含的工作日名称
	Days(ctx context.Context) []string
	// GetDay 某天完整课表，并标记当前课与下一节课
	GetDay(ctx context.Context, q *dto.ScheduleQuery) (*dto.DayScheduleResponse, error)
	// GetNow 当前课与下一节课
	GetNow(ctx context.Context, q *dto.ScheduleQuery) (*dto.NowResponse, error)
	// GetWeek 一周课表
	GetWeek(ctx context.Context) (*dto.WeekResponse, error)
	// Watch 按采样间隔持续推送 GetNow 结果，ctx 取消后关闭通道
	Watch(ctx context.Context, q *dto.ScheduleQuery) (<-chan dto.NowResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	clock  clock.Clock
	loc    *time.Location
	tick   time.Duration
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, clk clock.Clock, loc *time.Location, tick time.Duration, logger *zap.Logger) ScheduleService {
	return &scheduleService{
		repo:   repo,
		clock:  clk,
		loc:    loc,
		tick:   tick,
		logger: logger,
	}
}

// snapshot 一次解析的完整上下文
type snapshot struct {
	day      model.Weekday
	fallback bool
	at       time.Time // 参考时区下的时间点
	now      model.TimeOfDay
	periods  []model.ClassPeriod
	res      schedule.Resolution
}

// ────────────────────── Days ──────────────────────

func (s *scheduleService) Days(ctx context.Context) []string {
	days := s.repo.Period.Days(ctx)
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return names
}

// ────────────────────── GetNow ──────────────────────

func (s *scheduleService) GetNow(ctx context.Context, q *dto.ScheduleQuery) (*dto.NowResponse, error) {
	snap, err := s.resolve(ctx, q)
	if err != nil {
		return nil, err
	}
	resp := toNowResponse(snap)
	return &resp, nil
}

// ────────────────────── GetDay ──────────────────────

func (s *scheduleService) GetDay(ctx context.Context, q *dto.ScheduleQuery) (*dto.DayScheduleResponse, error) {
	snap, err := s.resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	periods := make([]dto.PeriodResponse, 0, len(snap.periods))
	for _, p := range snap.periods {
		periods = append(periods, toPeriodResponse(p, statusOf(p, snap.res)))
	}

	prev, next := neighbourDays(s.repo.Period.Days(ctx), snap.day)

	return &dto.DayScheduleResponse{
		NowResponse: toNowResponse(snap),
		PrevDay:     prev,
		NextDay:     next,
		Periods:     periods,
	}, nil
}

// ────────────────────── GetWeek ──────────────────────

func (s *scheduleService) GetWeek(ctx context.Context) (*dto.WeekResponse, error) {
	days := s.repo.Period.Days(ctx)
	week := &dto.WeekResponse{
		Timezone: s.loc.String(),
		Days:     make([]dto.DaySummary, 0, len(days)),
	}

	for _, d := range days {
		periods, err := s.repo.Period.ListByDay(ctx, d)
		if err != nil {
			s.logger.Error("读取课表失败", zap.String("day", d.String()), zap.Error(err))
			return nil, err
		}
		summary := dto.DaySummary{Day: d.String(), Periods: make([]dto.PeriodResponse, 0, len(periods))}
		for _, p := range periods {
			summary.Periods = append(summary.Periods, toPeriodResponse(p, ""))
		}
		week.Days = append(week.Days, summary)
	}

	return week, nil
}

// ────────────────────── Watch ──────────────────────

func (s *scheduleService) Watch(ctx context.Context, q *dto.ScheduleQuery) (<-chan dto.NowResponse, error) {
	// 首次解析同步执行，参数错误直接返回给调用方
	first, err := s.GetNow(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make(chan dto.NowResponse, 1)
	out <- *first

	go func() {
		defer close(out)

		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Debug("实时推送结束", zap.Error(ctx.Err()))
				return
			case <-ticker.C:
				resp, err := s.GetNow(ctx, q)
				if err != nil {
					s.logger.Error("实时推送解析失败", zap.Error(err))
					return
				}
				select {
				case out <- *resp:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// ── 内部辅助方法 ──

// resolve 采样时钟（或使用固定预览时刻）、选择工作日并运行解析器
func (s *scheduleService) resolve(ctx context.Context, q *dto.ScheduleQuery) (*snapshot, error) {
	at := s.clock.Now().In(s.loc)
	now := schedule.TimeOfDayFrom(at)

	if strings.TrimSpace(q.At) != "" {
		pinned, err := schedule.ParseTimeOfDay(q.At)
		if err != nil {
			return nil, err
		}
		now = pinned
		at = time.Date(at.Year(), at.Month(), at.Day(), pinned.Hour(), pinned.Minute(), 0, 0, s.loc)
	}

	day, fallback := s.selectDay(ctx, q.Day, at)

	periods, err := s.repo.Period.ListByDay(ctx, day)
	if errors.Is(err, repository.ErrDayNotFound) {
		// 课表只配置了部分工作日时，同样回退到默认日
		day, fallback = s.repo.Period.DefaultDay(ctx), true
		periods, err = s.repo.Period.ListByDay(ctx, day)
	}
	if err != nil {
		s.logger.Error("读取课表失败", zap.String("day", day.String()), zap.Error(err))
		return nil, err
	}

	return &snapshot{
		day:      day,
		fallback: fallback,
		at:       at,
		now:      now,
		periods:  periods,
		res:      schedule.Resolve(periods, now),
	}, nil
}

// selectDay 空选择器取参考时区的今天（周末回退），否则按名称解析（无法识别时回退）
func (s *scheduleService) selectDay(ctx context.Context, selector string, at time.Time) (model.Weekday, bool) {
	def := s.repo.Period.DefaultDay(ctx)

	if strings.TrimSpace(selector) == "" {
		if d, ok := schedule.WeekdayOf(at.Weekday()); ok {
			return d, false
		}
		return def, true
	}

	day, fallback := schedule.SelectWeekday(selector, def)
	if fallback {
		s.logger.Warn("未知的日期选择器，回退到默认日",
			zap.String("selector", selector),
			zap.String("fallback", def.String()),
		)
	}
	return day, fallback
}

// neighbourDays 课表中的前一天与后一天，两端不回绕
func neighbourDays(days []model.Weekday, day model.Weekday) (prev, next *string) {
	for i, d := range days {
		if d != day {
			continue
		}
		if i > 0 {
			name := days[i-1].String()
			prev = &name
		}
		if i+1 < len(days) {
			name := days[i+1].String()
			next = &name
		}
		break
	}
	return prev, next
}

func statusOf(p model.ClassPeriod, res schedule.Resolution) string {
	switch {
	case res.Current != nil && res.Current.ID == p.ID:
		return dto.PeriodStatusCurrent
	case res.Next != nil && res.Next.ID == p.ID:
		return dto.PeriodStatusNext
	default:
		return ""
	}
}

func toPeriodResponse(p model.ClassPeriod, status string) dto.PeriodResponse {
	return dto.PeriodResponse{
		ID:        p.ID,
		Subject:   p.Subject,
		Teacher:   p.Teacher,
		Room:      p.Room,
		StartTime: p.Start.String(),
		EndTime:   p.End.String(),
		TimeRange: p.Start.Format12h() + " - " + p.End.Format12h(),
		Status:    status,
	}
}

func toNowResponse(snap *snapshot) dto.NowResponse {
	resp := dto.NowResponse{
		Day:      snap.day.String(),
		Fallback: snap.fallback,
		Now:      snap.now.String(),
		Clock:    snap.at.Format("3:04:05 PM"),
	}

	if cur := snap.res.Current; cur != nil {
		p := toPeriodResponse(*cur, dto.PeriodStatusCurrent)
		resp.Current = &p
		remaining := int(cur.End - snap.now)
		resp.MinutesRemaining = &remaining
	}
	if next := snap.res.Next; next != nil {
		p := toPeriodResponse(*next, dto.PeriodStatusNext)
		resp.Next = &p
		// 重叠课时下，按位置取得的下一节可能已经开始
		if until := int(next.Start - snap.now); until >= 0 {
			resp.MinutesUntilNext = &until
		}
	}

	return resp
}
