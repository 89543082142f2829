package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testSecret = "test-secret-key-for-unit-testing-2026"

func TestLoad_DefaultsWithEnvSecret(t *testing.T) {
	t.Setenv("SNAP_AUTH_JWT_SECRET", testSecret)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("期望默认端口 8080，实际=%d", cfg.Server.Port)
	}
	if cfg.Schedule.Timezone != "America/New_York" {
		t.Errorf("期望默认时区 America/New_York，实际=%s", cfg.Schedule.Timezone)
	}
	if cfg.Schedule.TickInterval != time.Second {
		t.Errorf("期望默认采样间隔 1s，实际=%s", cfg.Schedule.TickInterval)
	}
	if cfg.Auth.DemoLoginDelay != 2*time.Second {
		t.Errorf("期望默认登录延迟 2s，实际=%s", cfg.Auth.DemoLoginDelay)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SNAP_AUTH_JWT_SECRET", testSecret)
	t.Setenv("SNAP_SCHEDULE_TIMEZONE", "Asia/Shanghai")
	t.Setenv("SNAP_SERVER_PORT", "9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Schedule.Timezone != "Asia/Shanghai" {
		t.Errorf("期望环境变量覆盖时区，实际=%s", cfg.Schedule.Timezone)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望环境变量覆盖端口，实际=%d", cfg.Server.Port)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
auth:
  jwt_secret: "file-secret-0123456789"
  demo_login_delay: 500ms
schedule:
  tick_interval: 5s
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Auth.DemoLoginDelay != 500*time.Millisecond {
		t.Errorf("期望登录延迟 500ms，实际=%s", cfg.Auth.DemoLoginDelay)
	}
	if cfg.Schedule.TickInterval != 5*time.Second {
		t.Errorf("期望采样间隔 5s，实际=%s", cfg.Schedule.TickInterval)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SNAP_AUTH_JWT_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Error("缺少 jwt_secret 时应失败")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Auth:     AuthConfig{JWTSecret: testSecret, SessionTTL: time.Hour},
			Schedule: ScheduleConfig{Timezone: "America/New_York", TickInterval: time.Second},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("合法配置不应失败: %v", err)
	}

	cases := map[string]func(c *Config){
		"短密钥":    func(c *Config) { c.Auth.JWTSecret = "short" },
		"端口越界":   func(c *Config) { c.Server.Port = 70000 },
		"未知时区":   func(c *Config) { c.Schedule.Timezone = "Mars/Olympus" },
		"采样间隔为零": func(c *Config) { c.Schedule.TickInterval = 0 },
		"会话时长为零": func(c *Config) { c.Auth.SessionTTL = 0 },
		"负登录延迟":  func(c *Config) { c.Auth.DemoLoginDelay = -time.Second },
	}
	for name, mutate := range cases {
		c := valid()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: 期望校验失败", name)
		}
	}
}
