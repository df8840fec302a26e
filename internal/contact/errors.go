package contact

import "errors"

// 聯絡人領域錯誤，由 HTTP 層映射為對應的狀態碼.
var (
	ErrMissingField    = errors.New("missing required fields")
	ErrInvalidPhone    = errors.New("phone number must contain 10 to 15 digits")
	ErrForbidden       = errors.New("this phone number cannot be registered")
	ErrDuplicatePhone  = errors.New("phone number already registered")
	ErrNotFound        = errors.New("contact not found")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrNoContacts      = errors.New("no contacts to export")
)
