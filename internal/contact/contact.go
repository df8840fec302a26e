package contact

// RegisterRequest 註冊聯絡人請求.
type RegisterRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// SelfUpdateRequest 聯絡人自助更新請求（以原電話號碼識別）.
type SelfUpdateRequest struct {
	OldPhoneNumber string `json:"old_phone_number"`
	NewName        string `json:"new_name"`
	NewPhoneNumber string `json:"new_phone_number"`
}

// AdminUpdateRequest 管理員更新請求（以記錄 ID 識別）.
type AdminUpdateRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}
