package contact

import "strings"

// ValidateRegisterRequest 驗證註冊請求並回傳正規化後的電話號碼.
// 檢查順序：必填欄位 → 號碼格式 → 拒絕名單；全部在觸碰資料庫之前完成.
func ValidateRegisterRequest(req *RegisterRequest, denyList []string) (string, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.PhoneNumber) == "" {
		return "", ErrMissingField
	}

	digits, err := NormalizeAndValidatePhone(req.PhoneNumber)
	if err != nil {
		return "", err
	}

	if IsDenied(digits, denyList) {
		return "", ErrForbidden
	}

	return digits, nil
}

// ValidateSelfUpdateRequest 驗證自助更新請求.
// 回傳正規化後的舊號碼與新號碼（未提供新號碼時為空字串）.
func ValidateSelfUpdateRequest(req *SelfUpdateRequest) (oldDigits, newDigits string, err error) {
	if strings.TrimSpace(req.OldPhoneNumber) == "" {
		return "", "", ErrMissingField
	}
	if strings.TrimSpace(req.NewName) == "" && strings.TrimSpace(req.NewPhoneNumber) == "" {
		return "", "", ErrMissingField
	}

	// 舊號碼僅做正規化，用於查找現有記錄
	oldDigits = NormalizePhone(req.OldPhoneNumber)

	// 新號碼在任何寫入發生之前必須獨立通過驗證
	if strings.TrimSpace(req.NewPhoneNumber) != "" {
		newDigits, err = NormalizeAndValidatePhone(req.NewPhoneNumber)
		if err != nil {
			return "", "", err
		}
	}

	return oldDigits, newDigits, nil
}

// ValidateAdminUpdateRequest 驗證管理員更新請求.
// 兩個欄位都未提供時回傳 ErrNothingToUpdate.
func ValidateAdminUpdateRequest(req *AdminUpdateRequest) (newDigits string, err error) {
	if strings.TrimSpace(req.Name) == "" && strings.TrimSpace(req.PhoneNumber) == "" {
		return "", ErrNothingToUpdate
	}

	if strings.TrimSpace(req.PhoneNumber) != "" {
		newDigits, err = NormalizeAndValidatePhone(req.PhoneNumber)
		if err != nil {
			return "", err
		}
	}

	return newDigits, nil
}
