package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-snap/backend/internal/dto"
	"schedule-snap/backend/internal/service"
	"schedule-snap/backend/pkg/response"
)

// AuthHandler 演示登录 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// DemoLogin 演示登录
// POST /api/v1/auth/demo-login
func (h *AuthHandler) DemoLogin(c *gin.Context) {
	var req dto.DemoLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.DemoLogin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// 客户端已断开，无需写响应体
			c.AbortWithStatus(http.StatusRequestTimeout)
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 注销演示会话
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetSession(c)
	if !ok {
		return
	}

	var exp time.Time
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims.ID, exp); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me 当前演示会话
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := MustGetSession(c)
	if !ok {
		return
	}

	info := dto.SessionInfoResponse{Email: claims.Email}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.UTC().Format(time.RFC3339)
	}

	response.OK(c, info)
}
