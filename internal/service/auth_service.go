package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"schedule-snap/backend/config"
	"schedule-snap/backend/internal/dto"
	"schedule-snap/backend/pkg/jwt"
)

// TokenBlacklist 会话注销存储（Redis 实现）
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService 演示登录业务接口
//
// 这是界面演示用的登录流程，不校验任何凭据：
// 任意格式合法的邮箱与非空密码都会在模拟延迟后拿到一个会话 token。
type AuthService interface {
	DemoLogin(ctx context.Context, req *dto.DemoLoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg       *config.AuthConfig
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService 创建 AuthService 实例；blacklist 为 nil 时注销只在客户端生效
func NewAuthService(
	cfg *config.AuthConfig,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) DemoLogin(ctx context.Context, req *dto.DemoLoginRequest) (*dto.SessionResponse, error) {
	// 1. 模拟登录耗时，客户端断开时提前结束
	if s.cfg.DemoLoginDelay > 0 {
		timer := time.NewTimer(s.cfg.DemoLoginDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// 2. 签发会话 token
	email := strings.ToLower(strings.TrimSpace(req.Email))
	token, jti, exp, err := s.jwtMgr.GenerateSessionToken(email)
	if err != nil {
		s.logger.Error("生成会话 token 失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("演示登录成功", zap.String("jti", jti))

	return &dto.SessionResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.cfg.SessionTTL.Seconds()),
		Email:       email,
		ExpiresAt:   exp.UTC().Format(time.RFC3339),
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.blacklist == nil {
		s.logger.Warn("Redis 不可用，注销仅在客户端生效", zap.String("jti", jti))
		return nil
	}

	if err := s.blacklist.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("写入会话黑名单失败", zap.String("jti", jti), zap.Error(err))
		return err
	}

	s.logger.Info("演示会话已注销", zap.String("jti", jti))
	return nil
}
