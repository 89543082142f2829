package handler

import (
	"github.com/gin-gonic/gin"

	"schedule-snap/backend/pkg/jwt"
	"schedule-snap/backend/pkg/response"
)

// MustGetSession 从 Gin 上下文中安全提取演示会话 claims。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetSession(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(jwt.ContextKey)
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil || claims.ID == "" {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	return claims, true
}
