package constants

// HTTP 請求相關常數
const (
	// 默認值（可被配置覆蓋）
	DefaultMaxRequestBodySize = 10 << 20 // 10MB
	DefaultMaxMultipartMemory = 10 << 20 // 10MB
	DefaultRequestTimeout     = 30       // 秒
)

// 列表相關常數
const (
	// 公開聯絡人列表端點的記錄上限；管理端點不設上限
	DefaultPublicListMax = 250
)
