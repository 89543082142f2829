package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"schedule-snap/backend/config"
	"schedule-snap/backend/internal/dto"
	"schedule-snap/backend/pkg/jwt"
)

func setupTestAuthService(delay time.Duration, blacklist TokenBlacklist) (AuthService, *jwt.Manager) {
	cfg := &config.AuthConfig{
		JWTSecret:      "test-secret-at-least-16",
		SessionTTL:     time.Hour,
		DemoLoginDelay: delay,
	}
	mgr := jwt.NewManager(cfg)
	return NewAuthService(cfg, mgr, blacklist, zap.NewNop()), mgr
}

// ── DemoLogin 测试 ──

func TestDemoLogin_IssuesSession(t *testing.T) {
	svc, mgr := setupTestAuthService(0, nil)

	resp, err := svc.DemoLogin(context.Background(), &dto.DemoLoginRequest{
		Email:    "  Student@School.EDU ",
		Password: "anything",
	})
	if err != nil {
		t.Fatalf("DemoLogin 应成功: %v", err)
	}
	if resp.Email != "student@school.edu" {
		t.Errorf("期望邮箱归一化，实际=%s", resp.Email)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("期望 ExpiresIn=3600，实际=%d", resp.ExpiresIn)
	}

	claims, err := mgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("签发的 token 应能解析: %v", err)
	}
	if claims.Email != "student@school.edu" {
		t.Errorf("期望 claims.Email=student@school.edu，实际=%s", claims.Email)
	}
}

func TestDemoLogin_Delay(t *testing.T) {
	svc, _ := setupTestAuthService(30*time.Millisecond, nil)

	start := time.Now()
	if _, err := svc.DemoLogin(context.Background(), &dto.DemoLoginRequest{Email: "a@b.co", Password: "x"}); err != nil {
		t.Fatalf("DemoLogin 应成功: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("期望至少等待 30ms，实际=%v", elapsed)
	}
}

func TestDemoLogin_Canceled(t *testing.T) {
	svc, _ := setupTestAuthService(time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.DemoLogin(ctx, &dto.DemoLoginRequest{Email: "a@b.co", Password: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("期望 context.Canceled，实际: %v", err)
	}
}

// ── Logout 测试 ──

func TestLogout_Blacklists(t *testing.T) {
	bl := newMockBlacklist()
	svc, _ := setupTestAuthService(0, bl)

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Logout 应成功: %v", err)
	}
	ttl, ok := bl.tokens["jti-1"]
	if !ok {
		t.Fatal("期望 jti-1 写入黑名单")
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("黑名单 TTL 应为剩余有效期，实际=%v", ttl)
	}
}

func TestLogout_NoRedis(t *testing.T) {
	svc, _ := setupTestAuthService(0, nil)

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("无 Redis 时注销应降级成功，实际: %v", err)
	}
}

func TestLogout_BlacklistError(t *testing.T) {
	bl := newMockBlacklist()
	bl.err = errors.New("redis down")
	svc, _ := setupTestAuthService(0, bl)

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); !errors.Is(err, bl.err) {
		t.Errorf("期望透传黑名单错误，实际: %v", err)
	}
}
