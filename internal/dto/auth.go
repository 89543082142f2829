package dto

// ── 演示登录 DTO ──

// DemoLoginRequest 演示登录请求（任意邮箱与密码均可）
type DemoLoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse 演示会话
type SessionResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // 秒
	Email       string `json:"email"`
	ExpiresAt   string `json:"expires_at"` // RFC3339
}

// SessionInfoResponse 当前演示会话信息
type SessionInfoResponse struct {
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}
