package middleware

import (
	"crypto/subtle"
	"errors"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader 管理端點使用的共享密鑰標頭.
const AdminKeyHeader = "x-admin-key"

// 管理密鑰驗證錯誤.
var (
	ErrMissingKey = errors.New("key is required")
	ErrInvalidKey = errors.New("invalid admin key")
)

// AdminGate 管理共享密鑰閘門.
// 密鑰由配置注入，不使用包級全域變數；比較採用恆定時間.
type AdminGate struct {
	secret string
}

// NewAdminGate 以配置的密鑰建立閘門.
func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{secret: secret}
}

// Check 驗證呼叫方提交的密鑰.
func (g *AdminGate) Check(key string) error {
	if key == "" {
		return ErrMissingKey
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(g.secret)) != 1 {
		return ErrInvalidKey
	}
	return nil
}

// RequireAdmin 管理路由中間件.
// 標頭缺失、為空或與配置密鑰不相等時以 401 短路，不會發生任何存儲訪問.
func (g *AdminGate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if err := g.Check(key); err != nil {
			c.AbortWithStatusJSON(401, gin.H{
				"error":      "Invalid admin key",
				"success":    false,
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
