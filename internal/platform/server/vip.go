package server

import (
	"io"

	"contact-vault/internal/httputil"
	"contact-vault/internal/platform/logger"
	"contact-vault/internal/storage/database/vipmedia"
	"contact-vault/internal/vip"

	"github.com/gin-gonic/gin"
)

// sendVIPMedia 管理員上傳 VIP 媒體.
// 上傳內容以 data URI 形式自包含存入集合，不落地任何檔案.
func (h *handlers) sendVIPMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.BadRequest(c, httputil.NoFileUploaded)
		return
	}

	declaredType := c.PostForm("type")
	caption := c.PostForm("caption")

	file, err := fileHeader.Open()
	if err != nil {
		httputil.InternalServerError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	mime := vip.ResolveMIME(fileHeader.Header.Get("Content-Type"), data)
	if err := vip.ValidateMediaType(declaredType, mime); err != nil {
		httputil.BadRequest(c, httputil.UnsupportedMediaType)
		return
	}

	media := &vipmedia.Media{
		FileURL: vip.DataURI(mime, data),
		Caption: caption,
		Type:    declaredType,
	}

	if err := h.repos.VIPMedia.Create(c.Request.Context(), media); err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	h.audit.LogMediaUploaded(c.Request.Context(), media.ID.Hex(), media.Type)
	logger.Info(c.Request.Context(), "VIP 媒體上傳成功",
		logger.WithMediaID(media.ID.Hex()),
		logger.WithAction("send_vip_media"))

	c.JSON(200, gin.H{
		"success": true,
		"message": httputil.MediaUploaded,
		"media":   media,
	})
}

// listVIPMedia 公開 VIP 媒體列表；最新在前，不設上限.
func (h *handlers) listVIPMedia(c *gin.Context) {
	list, err := h.repos.VIPMedia.List(c.Request.Context())
	if err != nil {
		httputil.InternalServerError(c, err)
		return
	}

	c.JSON(200, gin.H{"photos": list})
}
