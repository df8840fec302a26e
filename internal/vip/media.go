package vip

import (
	"encoding/base64"
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

// 媒體類型.
const (
	TypePhoto = "photo"
	TypeVideo = "video"
	TypeAudio = "audio"
)

// 媒體錯誤.
var (
	ErrMissingFile      = errors.New("no file uploaded")
	ErrInvalidMediaType = errors.New("unsupported media type for the declared type")
)

// allowedMIMETypes 各媒體類型允許的 MIME 類型.
var allowedMIMETypes = map[string][]string{
	TypePhoto: {"image/jpeg", "image/png", "image/webp"},
	TypeVideo: {"video/mp4", "video/webm"},
	TypeAudio: {"audio/mpeg", "audio/mp3", "audio/ogg"},
}

// ResolveMIME 決定上傳內容的 MIME 類型.
// 優先採用 multipart 部分聲明的 Content-Type；缺失或為通用二進位類型時，
// 退回以 mimetype 對位元組內容做探測.
func ResolveMIME(declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(data).String()
}

// ValidateMediaType 檢查 MIME 類型是否在宣告媒體類型的允許清單內.
func ValidateMediaType(declaredType, mime string) error {
	allowed, ok := allowedMIMETypes[declaredType]
	if !ok {
		return ErrInvalidMediaType
	}
	for _, m := range allowed {
		if mime == m {
			return nil
		}
	}
	return ErrInvalidMediaType
}

// DataURI 將原始位元組編碼為自包含的 data URI.
// 純轉換，不依賴任何外部儲存.
func DataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
