package admin

import (
	"io"
	"strings"

	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// settingBodyLimit 设置请求体上限
const settingBodyLimit = 1 << 20

// GetSetting 获取设置（basic / footer / contact）
func (h *Handler) GetSetting(c *gin.Context) {
	value, err := h.SettingService.Get(strings.TrimSpace(c.Param("key")))
	if err != nil {
		respondMappedError(c, err, settingErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, value)
}

// UpdateSetting 整体更新设置
func (h *Handler) UpdateSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if !service.IsSettingKey(key) {
		respondError(c, response.CodeNotFound, "error.not_found", nil)
		return
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, settingBodyLimit))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	value, err := h.SettingService.Update(key, raw)
	if err != nil {
		respondMappedError(c, err, settingErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, value)
}
