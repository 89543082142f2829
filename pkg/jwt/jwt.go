package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"schedule-snap/backend/config"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

const (
	issuer        = "schedule-snap"
	tokenTypeDemo = "demo_session"

	// ContextKey 认证中间件在 gin.Context 中存放 *Claims 的 key
	ContextKey = "session"
)

// Claims 演示会话声明（不对应任何真实账号）
type Claims struct {
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwtv5.RegisteredClaims
}

// Manager JWT 管理器
type Manager struct {
	secret     []byte
	sessionTTL time.Duration
	now        func() time.Time
}

// NewManager 创建 JWT 管理器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.JWTSecret),
		sessionTTL: cfg.SessionTTL,
		now:        time.Now,
	}
}

// GenerateSessionToken 生成演示会话 Token，返回 token、jti 与过期时间
func (m *Manager) GenerateSessionToken(email string) (string, string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.sessionTTL)
	jti := uuid.New().String()

	claims := Claims{
		Email:     email,
		TokenType: tokenTypeDemo,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        jti,
			Subject:   email,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(exp),
			Issuer:    issuer,
		},
	}

	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("签发 Token 失败: %w", err)
	}
	return token, jti, exp, nil
}

// ParseToken 校验并解析 Token
func (m *Manager) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwtv5.ParseWithClaims(tokenStr, claims, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwtv5.WithIssuer(issuer), jwtv5.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.TokenType != tokenTypeDemo {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
