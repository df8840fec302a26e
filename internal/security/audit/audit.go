package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"contact-vault/internal/platform/middleware"
)

// Service 審計服務.
// 記錄所有管理端變更操作，輸出 JSON 事件到標準日誌.
type Service struct {
	enabled bool
	logger  *log.Logger
}

// NewService 創建審計服務
func NewService(enabled bool) *Service {
	return &Service{
		enabled: enabled,
		logger:  log.Default(),
	}
}

// Event 審計事件
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	EventType string                 `json:"event_type"`
	ContactID string                 `json:"contact_id,omitempty"`
	TargetID  string                 `json:"target_id,omitempty"`
	Action    string                 `json:"action"`
	Result    string                 `json:"result"` // success, failure
	Details   map[string]interface{} `json:"details,omitempty"`
	IPAddress string                 `json:"ip_address,omitempty"`
	UserAgent string                 `json:"user_agent,omitempty"`
}

// LogAdminLogin 記錄管理員登入嘗試
func (a *Service) LogAdminLogin(ctx context.Context, result string) {
	if !a.enabled {
		return
	}

	event := Event{
		Timestamp: time.Now(),
		EventType: "admin_login",
		Action:    "login",
		Result:    result,
	}

	a.enrichWithMetadata(ctx, &event)
	a.log(event)
}

// LogBroadcastPosted 記錄廣播發佈
func (a *Service) LogBroadcastPosted(ctx context.Context, broadcastID string) {
	if !a.enabled {
		return
	}

	event := Event{
		Timestamp: time.Now(),
		EventType: "broadcast_posted",
		TargetID:  broadcastID,
		Action:    "post_broadcast",
		Result:    "success",
	}

	a.enrichWithMetadata(ctx, &event)
	a.log(event)
}

// LogContactUpdated 記錄管理員更新聯絡人
func (a *Service) LogContactUpdated(ctx context.Context, contactID string, fields []string) {
	if !a.enabled {
		return
	}

	event := Event{
		Timestamp: time.Now(),
		EventType: "contact_updated",
		ContactID: contactID,
		Action:    "admin_update_contact",
		Result:    "success",
		Details: map[string]interface{}{
			"fields": fields,
		},
	}

	a.enrichWithMetadata(ctx, &event)
	a.log(event)
}

// LogContactDeleted 記錄管理員刪除聯絡人
func (a *Service) LogContactDeleted(ctx context.Context, contactID string) {
	if !a.enabled {
		return
	}

	event := Event{
		Timestamp: time.Now(),
		EventType: "contact_deleted",
		ContactID: contactID,
		Action:    "admin_delete_contact",
		Result:    "success",
	}

	a.enrichWithMetadata(ctx, &event)
	a.log(event)
}

// LogMediaUploaded 記錄 VIP 媒體上傳
func (a *Service) LogMediaUploaded(ctx context.Context, mediaID, mediaType string) {
	if !a.enabled {
		return
	}

	event := Event{
		Timestamp: time.Now(),
		EventType: "media_uploaded",
		TargetID:  mediaID,
		Action:    "upload_media",
		Result:    "success",
		Details: map[string]interface{}{
			"media_type": mediaType,
		},
	}

	a.enrichWithMetadata(ctx, &event)
	a.log(event)
}

// enrichWithMetadata 從 context 補充請求元數據
func (a *Service) enrichWithMetadata(ctx context.Context, event *Event) {
	meta := middleware.GetRequestMetadata(ctx)
	event.IPAddress = meta.IPAddress
	event.UserAgent = meta.UserAgent
}

// log 輸出審計事件
func (a *Service) log(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		a.logger.Printf("[AUDIT] marshal failed: %v", err)
		return
	}
	a.logger.Printf("[AUDIT] %s", string(data))
}
