package service

import (
	"go.uber.org/zap"

	"schedule-snap/backend/config"
	"schedule-snap/backend/internal/repository"
	"schedule-snap/backend/pkg/clock"
	"schedule-snap/backend/pkg/jwt"
	"schedule-snap/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Schedule ScheduleService
	Export   ExportService
	Auth     AuthService
}

// NewService 创建 Service 聚合；rdb 为 nil 时会话注销降级为仅客户端生效
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	clk clock.Clock,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) (*Service, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return nil, err
	}

	// 避免把 nil *redis.Client 装进非 nil 接口
	var blacklist TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	return &Service{
		Schedule: NewScheduleService(repo, clk, loc, cfg.Schedule.TickInterval, logger),
		Export:   NewExportService(repo, clk, loc, cfg.Server.BaseURL, logger),
		Auth:     NewAuthService(&cfg.Auth, jwtMgr, blacklist, logger),
	}, nil
}
