package server

import (
	"contact-vault/internal/constants"
	"contact-vault/internal/platform/config"
	"contact-vault/internal/platform/health"
	"contact-vault/internal/platform/middleware"
	"contact-vault/internal/security/audit"
	"contact-vault/internal/storage/database"

	"github.com/gin-gonic/gin"
)

// handlers 持有所有路由處理器需要的依賴.
type handlers struct {
	repos *database.Repositories
	audit *audit.Service
	gate  *middleware.AdminGate
}

// Router 設定路由.
func Router(repos *database.Repositories) *gin.Engine {
	cfg := config.Get()

	r := gin.Default()

	// 添加 CORS 中間件（允許清單來自配置）
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	// 添加請求 ID 中間件（最優先）
	r.Use(middleware.RequestIDMiddleware())

	// 添加安全標頭中間件
	r.Use(middleware.SecurityHeadersMiddleware())

	// 添加請求元數據中間件（提取 IP、User-Agent）
	r.Use(middleware.RequestMetadataMiddleware())

	// 添加請求大小限制（防止大文件攻擊）
	maxBodySize := int64(constants.DefaultMaxRequestBodySize)
	if cfg.Limits.Request.MaxBodySize > 0 {
		maxBodySize = cfg.Limits.Request.MaxBodySize
	}
	r.Use(middleware.RequestSizeLimiter(maxBodySize))

	maxMemory := int64(constants.DefaultMaxMultipartMemory)
	if cfg.Limits.Request.MaxMultipartMemory > 0 {
		maxMemory = cfg.Limits.Request.MaxMultipartMemory
	}
	r.MaxMultipartMemory = maxMemory

	// 管理閘門由配置注入密鑰
	gate := middleware.NewAdminGate(cfg.Security.AdminKey)

	h := &handlers{
		repos: repos,
		audit: audit.NewService(cfg.Security.Audit.Enabled),
		gate:  gate,
	}

	// 創建處理器
	healthHandler := health.NewHealthHandler()

	// health check
	r.GET("/health", healthHandler.HealthCheck)

	// 公開聯絡人 API
	r.GET("/api/contacts", h.listContacts)
	r.GET("/api/contacts/count", h.countContacts)
	r.GET("/api/contacts/download", h.downloadContacts)
	r.POST("/api/contacts", h.registerContact)
	r.PUT("/api/contacts", h.selfUpdateContact)

	// 公開廣播 API
	r.GET("/api/broadcast/latest", h.latestBroadcast)

	// 管理 API；除登入外全部經過共享密鑰閘門
	admin := r.Group("/api/admin")
	admin.POST("/login", h.adminLogin)
	admin.Use(gate.RequireAdmin())
	{
		admin.POST("/broadcast", h.postBroadcast)
		admin.GET("/contacts", h.adminListContacts)
		admin.PUT("/contacts/:id", h.adminUpdateContact)
		admin.DELETE("/contacts/:id", h.adminDeleteContact)
	}

	// VIP 媒體變體：僅在配置啟用時註冊路由
	if cfg.VIP.Enabled {
		admin.POST("/vip/send-media", h.sendVIPMedia)
		r.GET("/api/vip/photos", h.listVIPMedia)
	}

	return r
}
