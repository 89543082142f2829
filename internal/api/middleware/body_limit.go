package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedule-snap/backend/pkg/response"
)

// BodyLimit 请求体大小限制中间件
//
// 声明了 Content-Length 且超限的请求直接拒绝；
// 未声明长度的请求体在读取时截断，绑定失败由 Handler 按参数错误处理。
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
			c.Abort()
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
