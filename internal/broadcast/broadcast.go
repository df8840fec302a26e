package broadcast

import (
	"errors"
	"strings"
)

// ErrMissingMessage 廣播內容為空.
var ErrMissingMessage = errors.New("message is required")

// PostRequest 發佈廣播請求.
type PostRequest struct {
	Message string `json:"message"`
}

// ValidatePostRequest 驗證發佈廣播請求.
func ValidatePostRequest(req *PostRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return ErrMissingMessage
	}
	return nil
}
