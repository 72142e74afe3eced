package admin

import (
	"strings"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// BannerRequest Banner 创建/更新请求
type BannerRequest struct {
	Title       string `json:"title" binding:"max=200"`
	Subtitle    string `json:"subtitle" binding:"max=255"`
	Image       string `json:"image" binding:"required"`
	MobileImage string `json:"mobile_image"`
	LinkURL     string `json:"link_url"`
	ButtonText  string `json:"button_text" binding:"max=60"`
	IsActive    *bool  `json:"is_active"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	SortOrder   int    `json:"sort_order"`
}

// GetAdminBanners 获取后台 Banner 列表
func (h *Handler) GetAdminBanners(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, ok := handlershared.ParseOptionalBool(c, "is_active")
	if !ok {
		return
	}
	banners, total, err := h.BannerService.ListAdmin(repository.BannerListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, banners, page, pageSize, total)
}

// GetAdminBanner 获取后台 Banner 详情
func (h *Handler) GetAdminBanner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	banner, err := h.BannerService.GetByID(id)
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, banner)
}

// CreateBanner 创建 Banner
func (h *Handler) CreateBanner(c *gin.Context) {
	input, ok := bindBannerInput(c)
	if !ok {
		return
	}
	banner, err := h.BannerService.Create(input)
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, banner)
}

// UpdateBanner 更新 Banner
func (h *Handler) UpdateBanner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	input, ok := bindBannerInput(c)
	if !ok {
		return
	}
	banner, err := h.BannerService.Update(id, input)
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, banner)
}

// DeleteBanner 删除 Banner
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.BannerService.Delete(id); err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}

func bindBannerInput(c *gin.Context) (service.BannerInput, bool) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return service.BannerInput{}, false
	}
	startAt, err := handlershared.ParseTimeNullable(req.StartAt)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return service.BannerInput{}, false
	}
	endAt, err := handlershared.ParseTimeNullable(req.EndAt)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return service.BannerInput{}, false
	}
	return service.BannerInput{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Image:       req.Image,
		MobileImage: req.MobileImage,
		LinkURL:     req.LinkURL,
		ButtonText:  req.ButtonText,
		IsActive:    boolOrDefault(req.IsActive, true),
		StartAt:     startAt,
		EndAt:       endAt,
		SortOrder:   req.SortOrder,
	}, true
}
