package database

import (
	"fmt"
	"regexp"
)

var objectIDPattern = regexp.MustCompile("^[a-fA-F0-9]{24}$")

// ValidateObjectID 驗證 MongoDB ObjectID 格式.
// 在路徑參數進入查詢之前先行過濾，避免畸形輸入觸碰存儲層.
func ValidateObjectID(id string) error {
	if len(id) != 24 || !objectIDPattern.MatchString(id) {
		return fmt.Errorf("無效的 ObjectID 格式")
	}
	return nil
}
