package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schedule-snap/backend/config"
	"schedule-snap/backend/internal/api/handler"
	"schedule-snap/backend/internal/api/middleware"
	"schedule-snap/backend/pkg/jwt"
	"schedule-snap/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时限流与会话黑名单降级关闭
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// 避免把 nil *redis.Client 装进非 nil 接口
	var (
		limiter middleware.RateLimiter
		revoked middleware.RevocationChecker
	)
	if rdb != nil {
		limiter, revoked = rdb, rdb
	}

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "redis": rdb != nil})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 课表模块（公开）
		schedule := v1.Group("/schedule")
		{
			schedule.GET("/days", h.Schedule.Days)
			schedule.GET("/week", h.Schedule.Week)
			schedule.GET("/day", h.Schedule.Day)
			schedule.GET("/now", h.Schedule.Now)
			schedule.GET("/live", h.Schedule.Live)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/week.xlsx", h.Export.WeekXLSX)
			export.GET("/week.ics", h.Export.WeekICS)
		}

		// 演示登录
		auth := v1.Group("/auth")
		{
			auth.POST("/demo-login",
				middleware.RateLimit(limiter, cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow, logger),
				h.Auth.DemoLogin,
			)

			session := auth.Group("")
			session.Use(middleware.JWTAuth(jwtMgr, revoked, logger))
			{
				session.POST("/logout", h.Auth.Logout)
				session.GET("/me", h.Auth.Me)
			}
		}
	}

	return r
}
