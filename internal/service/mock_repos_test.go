package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"schedule-snap/backend/internal/model"
	"schedule-snap/backend/internal/repository"
	"schedule-snap/backend/internal/schedule"
	"schedule-snap/backend/pkg/clock"
)

// ── Mock Repositories ──

type mockPeriodRepo struct {
	days    []model.Weekday
	periods map[model.Weekday][]model.ClassPeriod
	listErr error
}

func (m *mockPeriodRepo) Days(_ context.Context) []model.Weekday {
	return append([]model.Weekday(nil), m.days...)
}

func (m *mockPeriodRepo) DefaultDay(_ context.Context) model.Weekday {
	return m.days[0]
}

func (m *mockPeriodRepo) ListByDay(_ context.Context, day model.Weekday) ([]model.ClassPeriod, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	p, ok := m.periods[day]
	if !ok {
		return nil, repository.ErrDayNotFound
	}
	return append([]model.ClassPeriod(nil), p...), nil
}

// ── Mock Blacklist ──

type mockBlacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Duration
	err    error
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{tokens: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[jti] = ttl
	return nil
}

// ── 测试辅助 ──

func mustLoadLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("时区数据不可用: %v", err)
	}
	return loc
}

func defaultTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	table, err := schedule.DefaultWeekTable()
	if err != nil {
		t.Fatalf("内置课表应合法: %v", err)
	}
	return repository.NewRepository(table)
}

// at 2024-09-16 是周一
func at(loc *time.Location, day, hour, minute int) clock.Clock {
	return clock.Fixed(time.Date(2024, 9, day, hour, minute, 0, 0, loc))
}

func newTestScheduleService(t *testing.T, clk clock.Clock) ScheduleService {
	t.Helper()
	return NewScheduleService(defaultTestRepo(t), clk, mustLoadLocation(t), 10*time.Millisecond, zap.NewNop())
}
