package contact

import "strings"

// 電話號碼長度限制（正規化後的位數）.
const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 15
)

// NormalizePhone 將任意輸入轉為正規化的純數字字串.
// 純函數：移除所有非十進位數字的字符，不做其他轉換.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone 檢查正規化後的號碼長度是否落在 [10, 15] 區間.
func ValidatePhone(digits string) error {
	if len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits {
		return ErrInvalidPhone
	}
	return nil
}

// NormalizeAndValidatePhone 正規化並驗證電話號碼.
func NormalizeAndValidatePhone(raw string) (string, error) {
	digits := NormalizePhone(raw)
	if err := ValidatePhone(digits); err != nil {
		return "", err
	}
	return digits, nil
}

// IsDenied 檢查正規化後的號碼是否在拒絕名單中.
func IsDenied(digits string, denyList []string) bool {
	for _, blocked := range denyList {
		if digits == blocked {
			return true
		}
	}
	return false
}
