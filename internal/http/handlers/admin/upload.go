package admin

import (
	"strings"

	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadFile 上传图片，返回可访问 URL
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondMappedError(c, service.ErrUploadEmpty, uploadErrorRules, response.CodeBadRequest, "error.upload_empty")
		return
	}
	scene := strings.TrimSpace(c.PostForm("scene"))

	result, err := h.UploadService.SaveFile(c.Request.Context(), file, scene)
	if err != nil {
		respondMappedError(c, err, uploadErrorRules, response.CodeInternal, "error.upload_failed")
		return
	}
	requestLog(c).Infow("admin_upload_saved", "scene", scene, "url", result.URL, "size", result.Size)
	response.Created(c, result)
}
