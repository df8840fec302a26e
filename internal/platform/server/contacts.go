package server

import (
	"errors"
	"fmt"
	"strings"

	"contact-vault/internal/contact"
	"contact-vault/internal/httputil"
	"contact-vault/internal/platform/config"
	"contact-vault/internal/platform/logger"
	"contact-vault/internal/platform/middleware"
	"contact-vault/internal/storage/database/contacts"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// registerContact 註冊聯絡人.
// 驗證順序：必填欄位 → 號碼格式 → 拒絕名單；唯一性交給存儲層的唯一索引裁決.
func (h *handlers) registerContact(c *gin.Context) {
	var req contact.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, httputil.InvalidRequestFormat)
		return
	}

	// 名稱先消毒再驗證：只含控制字符的名稱消毒後為空，走必填欄位檢查
	req.Name = middleware.SanitizeInput(req.Name)

	cfg := config.Get()

	phone, err := contact.ValidateRegisterRequest(&req, cfg.Contact.DenyList)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrMissingField):
			httputil.BadRequest(c, httputil.MissingFields)
		case errors.Is(err, contact.ErrInvalidPhone):
			httputil.BadRequest(c, err.Error())
		case errors.Is(err, contact.ErrForbidden):
			httputil.Forbidden(c, err.Error())
		default:
			httputil.BadRequest(c, err.Error())
		}
		return
	}

	if err := middleware.ValidateContactName(req.Name); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	record := &contacts.Contact{
		Name:        req.Name,
		PhoneNumber: phone,
		Link:        cfg.Contact.SupportLink,
	}

	if err := h.repos.Contacts.Create(c.Request.Context(), record); err != nil {
		if errors.Is(err, contact.ErrDuplicatePhone) {
			httputil.Conflict(c, httputil.DuplicatePhone)
			return
		}
		httputil.InternalServerError(c, err)
		return
	}

	logger.Info(c.Request.Context(), "聯絡人註冊成功",
		logger.WithContactID(record.ID.Hex()),
		logger.WithAction("register_contact"))

	c.JSON(201, gin.H{
		"message": httputil.ContactCreated,
		"contact": record,
	})
}

// selfUpdateContact 聯絡人自助更新（以原電話號碼識別本人）.
func (h *handlers) selfUpdateContact(c *gin.Context) {
	var req contact.SelfUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, httputil.InvalidRequestFormat)
		return
	}

	req.NewName = middleware.SanitizeInput(req.NewName)

	oldPhone, newPhone, err := contact.ValidateSelfUpdateRequest(&req)
	if err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	// 與驗證層同一個「已提供」判準：只含空白的名稱視為未提供
	set := bson.M{}
	if name := req.NewName; strings.TrimSpace(name) != "" {
		if err := middleware.ValidateContactName(name); err != nil {
			httputil.BadRequest(c, err.Error())
			return
		}
		set["name"] = name
	}
	if newPhone != "" {
		set["phone_number"] = newPhone
	}

	// 空 $set 會被 MongoDB 拒絕，不送進存儲層
	if len(set) == 0 {
		httputil.BadRequest(c, httputil.MissingFields)
		return
	}

	updated, err := h.repos.Contacts.UpdateByPhone(c.Request.Context(), oldPhone, set)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrNotFound):
			httputil.NotFoundError(c, httputil.ContactNotFound)
		case errors.Is(err, contact.ErrDuplicatePhone):
			httputil.Conflict(c, httputil.DuplicatePhone)
		default:
			httputil.InternalServerError(c, err)
		}
		return
	}

	c.JSON(200, gin.H{
		"message": httputil.ContactUpdated,
		"contact": updated,
	})
}

// listContacts 公開聯絡人列表；最舊在前，上限由配置決定（預設 250 筆）.
func (h *handlers) listContacts(c *gin.Context) {
	list, err := h.repos.Contacts.List(c.Request.Context(), int64(config.PublicListMax()))
	if err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	c.JSON(200, gin.H{"contacts": list})
}

// countContacts 聯絡人總數.
func (h *handlers) countContacts(c *gin.Context) {
	count, err := h.repos.Contacts.Count(c.Request.Context())
	if err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	c.JSON(200, gin.H{"count": count})
}

// downloadContacts 匯出全部聯絡人為 vCard 附件（不設上限）.
func (h *handlers) downloadContacts(c *gin.Context) {
	list, err := h.repos.Contacts.List(c.Request.Context(), 0)
	if err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	entries := make([]contact.VCardEntry, 0, len(list))
	for _, record := range list {
		entries = append(entries, contact.VCardEntry{
			Name:        record.Name,
			PhoneNumber: record.PhoneNumber,
		})
	}

	cfg := config.Get()
	blob, err := contact.ExportVCard(entries, cfg.VCard.NameSuffix)
	if err != nil {
		if errors.Is(err, contact.ErrNoContacts) {
			httputil.NotFoundError(c, httputil.NoContactsToExport)
			return
		}
		httputil.InternalServerError(c, err)
		return
	}

	filename := cfg.VCard.Filename
	if filename == "" {
		filename = "contacts.vcf"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, contact.VCardContentType, []byte(blob))
}

// latestBroadcast 最新一則廣播；日誌為空時回傳 null，不是錯誤.
func (h *handlers) latestBroadcast(c *gin.Context) {
	latest, err := h.repos.Broadcasts.Latest(c.Request.Context())
	if err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": latest})
}
