package httputil

import "github.com/gin-gonic/gin"

// 成功訊息常數.
const (
	ContactCreated     = "Contact saved successfully"
	ContactUpdated     = "Contact updated successfully"
	ContactDeleted     = "Contact deleted successfully"
	BroadcastPosted    = "Broadcast posted successfully"
	MediaUploaded      = "Media uploaded successfully"
)

// 錯誤訊息常數.
const (
	InvalidRequestFormat = "Invalid request format"
	MissingFields        = "Name and phone number are required"
	ContactNotFound      = "Contact not found"
	DuplicatePhone       = "A contact with this phone number already exists"
	NoContactsToExport   = "No contacts to export"
	InvalidAdminKey      = "Invalid admin key"
	KeyRequired          = "Key is required"
	MessageRequired      = "Message is required"
	NoFileUploaded       = "No file uploaded"
	UnsupportedMediaType = "Unsupported media type"
)

// Error 自定義錯誤結構.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Success 回傳簡單的成功訊息回應.
func Success(message string) gin.H {
	return gin.H{"message": message}
}

// ErrorMessage 回傳簡單的錯誤訊息回應.
func ErrorMessage(message string) gin.H {
	return gin.H{"error": message}
}

// ErrorWithCode 回傳包含錯誤代碼的錯誤回應.
func ErrorWithCode(code int, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}
