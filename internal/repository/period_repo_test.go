package repository

import (
	"context"
	"errors"
	"testing"

	"schedule-snap/backend/internal/model"
	"schedule-snap/backend/internal/schedule"
)

func newTestRepo(t *testing.T) PeriodRepository {
	t.Helper()
	table, err := schedule.NewWeekTable(map[model.Weekday][]schedule.Row{
		model.Monday: {
			{ID: "1", Start: "08:00", End: "08:40", Subject: "Algebra"},
			{ID: "2", Start: "08:40", End: "09:20", Subject: "Chemistry"},
		},
		model.Friday: {
			{ID: "1", Start: "08:00", End: "08:40", Subject: "Mass"},
		},
	})
	if err != nil {
		t.Fatalf("构造课表失败: %v", err)
	}
	return NewRepository(table).Period
}

func TestPeriodRepo_ListByDay(t *testing.T) {
	repo := newTestRepo(t)

	periods, err := repo.ListByDay(context.Background(), model.Monday)
	if err != nil {
		t.Fatalf("ListByDay 应成功: %v", err)
	}
	if len(periods) != 2 || periods[0].ID != "1" || periods[1].ID != "2" {
		t.Errorf("期望按书写顺序返回 2 节课，实际=%+v", periods)
	}
}

func TestPeriodRepo_ListByDay_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.ListByDay(context.Background(), model.Wednesday)
	if !errors.Is(err, ErrDayNotFound) {
		t.Errorf("期望 ErrDayNotFound，实际: %v", err)
	}
}

func TestPeriodRepo_DaysAndDefault(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	days := repo.Days(ctx)
	if len(days) != 2 || days[0] != model.Monday || days[1] != model.Friday {
		t.Errorf("期望 [Monday Friday]，实际=%v", days)
	}
	if repo.DefaultDay(ctx) != model.Monday {
		t.Errorf("期望默认日 Monday，实际=%s", repo.DefaultDay(ctx))
	}
}
