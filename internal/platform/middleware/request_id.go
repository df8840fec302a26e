package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 請求 ID 標頭.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey gin context 中的請求 ID 鍵.
	RequestIDKey = "request_id"
)

// RequestIDMiddleware 為每個請求生成唯一 ID.
// 客戶端有提供時沿用，否則生成新的 UUID；ID 同時回寫到響應頭.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID 從 context 獲取 Request ID
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}
