package repository

import (
	"context"
	"errors"

	"schedule-snap/backend/internal/model"
	"schedule-snap/backend/internal/schedule"
)

// ErrDayNotFound 课表中没有该工作日
var ErrDayNotFound = errors.New("课表中没有该工作日")

// PeriodRepository 课时数据访问接口（只读，数据来自内置静态课表）
type PeriodRepository interface {
	Days(ctx context.Context) []model.Weekday
	DefaultDay(ctx context.Context) model.Weekday
	ListByDay(ctx context.Context, day model.Weekday) ([]model.ClassPeriod, error)
}

type periodRepo struct {
	table *schedule.WeekTable
}

// NewPeriodRepo 创建 PeriodRepository 实例
func NewPeriodRepo(table *schedule.WeekTable) PeriodRepository {
	return &periodRepo{table: table}
}

func (r *periodRepo) Days(_ context.Context) []model.Weekday {
	return r.table.Days()
}

func (r *periodRepo) DefaultDay(_ context.Context) model.Weekday {
	return r.table.DefaultDay()
}

func (r *periodRepo) ListByDay(_ context.Context, day model.Weekday) ([]model.ClassPeriod, error) {
	periods, ok := r.table.Day(day)
	if !ok {
		return nil, ErrDayNotFound
	}
	return periods, nil
}
