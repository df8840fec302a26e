package server

import (
	"errors"
	"strings"

	"contact-vault/internal/broadcast"
	"contact-vault/internal/contact"
	"contact-vault/internal/httputil"
	"contact-vault/internal/platform/logger"
	"contact-vault/internal/platform/middleware"
	"contact-vault/internal/storage/database"
	"contact-vault/internal/storage/database/broadcasts"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// adminLogin 驗證管理密鑰；不發 token，只回報密鑰是否有效.
func (h *handlers) adminLogin(c *gin.Context) {
	var req struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, httputil.InvalidRequestFormat)
		return
	}

	if req.Key == "" {
		httputil.BadRequest(c, httputil.KeyRequired)
		return
	}

	if err := h.gate.Check(req.Key); err != nil {
		h.audit.LogAdminLogin(c.Request.Context(), "failure")
		httputil.Unauthorized(c, httputil.InvalidAdminKey)
		return
	}

	h.audit.LogAdminLogin(c.Request.Context(), "success")
	c.JSON(200, gin.H{"success": true})
}

// postBroadcast 發佈一則廣播訊息（僅追加）.
func (h *handlers) postBroadcast(c *gin.Context) {
	var req broadcast.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, httputil.InvalidRequestFormat)
		return
	}

	if err := broadcast.ValidatePostRequest(&req); err != nil {
		httputil.BadRequest(c, httputil.MessageRequired)
		return
	}

	post := &broadcasts.BroadcastMessage{
		Message: req.Message,
	}

	if err := h.repos.Broadcasts.Create(c.Request.Context(), post); err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	h.audit.LogBroadcastPosted(c.Request.Context(), post.ID.Hex())
	logger.Info(c.Request.Context(), "廣播發佈成功",
		logger.WithBroadcastID(post.ID.Hex()),
		logger.WithAction("post_broadcast"))

	c.JSON(200, gin.H{
		"success": true,
		"message": httputil.BroadcastPosted,
		"post":    post,
	})
}

// adminListContacts 管理員聯絡人列表；最舊在前，不設上限.
func (h *handlers) adminListContacts(c *gin.Context) {
	list, err := h.repos.Contacts.List(c.Request.Context(), 0)
	if err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	c.JSON(200, gin.H{"contacts": list})
}

// adminUpdateContact 管理員以記錄 ID 更新任意聯絡人.
func (h *handlers) adminUpdateContact(c *gin.Context) {
	id := c.Param("id")
	if err := database.ValidateObjectID(id); err != nil {
		httputil.NotFoundError(c, httputil.ContactNotFound)
		return
	}

	var req contact.AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, httputil.InvalidRequestFormat)
		return
	}

	req.Name = middleware.SanitizeInput(req.Name)

	newPhone, err := contact.ValidateAdminUpdateRequest(&req)
	if err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	// 與驗證層同一個「已提供」判準：只含空白的名稱視為未提供
	set := bson.M{}
	fields := make([]string, 0, 2)
	if name := req.Name; strings.TrimSpace(name) != "" {
		if err := middleware.ValidateContactName(name); err != nil {
			httputil.BadRequest(c, err.Error())
			return
		}
		set["name"] = name
		fields = append(fields, "name")
	}
	if newPhone != "" {
		set["phone_number"] = newPhone
		fields = append(fields, "phone_number")
	}

	// 空 $set 會被 MongoDB 拒絕，不送進存儲層
	if len(set) == 0 {
		httputil.BadRequest(c, contact.ErrNothingToUpdate.Error())
		return
	}

	updated, err := h.repos.Contacts.UpdateByID(c.Request.Context(), id, set)
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

	h.audit.LogContactUpdated(c.Request.Context(), id, fields)

	c.JSON(200, gin.H{
		"message": httputil.ContactUpdated,
		"contact": updated,
	})
}

// adminDeleteContact 管理員刪除聯絡人；不存在時回報 404 且集合不受影響.
func (h *handlers) adminDeleteContact(c *gin.Context) {
	id := c.Param("id")
	if err := database.ValidateObjectID(id); err != nil {
		httputil.NotFoundError(c, httputil.ContactNotFound)
		return
	}

	if err := h.repos.Contacts.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			httputil.NotFoundError(c, httputil.ContactNotFound)
			return
		}
		httputil.InternalServerError(c, err)
		return
	}

	h.audit.LogContactDeleted(c.Request.Context(), id)
	logger.Info(c.Request.Context(), "聯絡人已刪除",
		logger.WithContactID(id),
		logger.WithAction("admin_delete_contact"))

	c.JSON(200, gin.H{"message": httputil.ContactDeleted})
}
