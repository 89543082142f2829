package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"schedule-snap/backend/pkg/jwt"
	"schedule-snap/backend/pkg/response"
)

// RevocationChecker 会话黑名单查询（Redis 实现）
type RevocationChecker interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// JWTAuth 演示会话认证中间件
// 从 Authorization: Bearer <token> 中提取并验证会话 Token，
// 通过后将 *jwt.Claims 注入上下文 jwt.ContextKey。
// revoked 为 nil 时跳过黑名单检查。
func JWTAuth(jwtMgr *jwt.Manager, revoked RevocationChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "缺少认证头")
			c.Abort()
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Unauthorized(c, 10002, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, 10002, "会话已过期")
			} else {
				response.Unauthorized(c, 10002, "Token 无效")
			}
			c.Abort()
			return
		}

		if revoked != nil {
			blacklisted, err := revoked.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// Redis 出错时降级放行
				logger.Warn("查询会话黑名单失败", zap.String("jti", claims.ID), zap.Error(err))
			} else if blacklisted {
				response.Unauthorized(c, 10002, "会话已注销")
				c.Abort()
				return
			}
		}

		c.Set(jwt.ContextKey, claims)

		c.Next()
	}
}
