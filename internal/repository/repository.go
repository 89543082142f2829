package repository

import "schedule-snap/backend/internal/schedule"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Period PeriodRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(table *schedule.WeekTable) *Repository {
	return &Repository{
		Period: NewPeriodRepo(table),
	}
}
