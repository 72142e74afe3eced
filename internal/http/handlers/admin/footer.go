package admin

import (
	"strconv"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// FooterSectionRequest 页脚分组请求
type FooterSectionRequest struct {
	Title     string `json:"title" binding:"required,max=120"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// FooterLinkRequest 页脚链接请求
type FooterLinkRequest struct {
	SectionID uint   `json:"section_id" binding:"required"`
	Label     string `json:"label" binding:"required,max=120"`
	URL       string `json:"url" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// GetAdminFooterSections 页脚分组列表
func (h *Handler) GetAdminFooterSections(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, ok := handlershared.ParseOptionalBool(c, "is_active")
	if !ok {
		return
	}
	sections, total, err := h.FooterService.ListSections(repository.ContentListFilter{
		Page:     page,
		PageSize: pageSize,
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, sections, page, pageSize, total)
}

// GetAdminFooterSection 页脚分组详情
func (h *Handler) GetAdminFooterSection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	section, err := h.FooterService.GetSection(id)
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, section)
}

// CreateFooterSection 创建页脚分组
func (h *Handler) CreateFooterSection(c *gin.Context) {
	var req FooterSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	section, err := h.FooterService.CreateSection(req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, section)
}

// UpdateFooterSection 更新页脚分组
func (h *Handler) UpdateFooterSection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req FooterSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	section, err := h.FooterService.UpdateSection(id, req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, section)
}

// DeleteFooterSection 删除页脚分组及其链接
func (h *Handler) DeleteFooterSection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.FooterService.DeleteSection(id); err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}

// GetAdminFooterLinks 页脚链接列表，可按 section_id 过滤
func (h *Handler) GetAdminFooterLinks(c *gin.Context) {
	sectionID, _ := strconv.ParseUint(c.Query("section_id"), 10, 64)
	links, err := h.FooterService.ListLinks(uint(sectionID))
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, links)
}

// GetAdminFooterLink 页脚链接详情
func (h *Handler) GetAdminFooterLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	link, err := h.FooterService.GetLink(id)
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, link)
}

// CreateFooterLink 创建页脚链接
func (h *Handler) CreateFooterLink(c *gin.Context) {
	var req FooterLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	link, err := h.FooterService.CreateLink(req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, link)
}

// UpdateFooterLink 更新页脚链接
func (h *Handler) UpdateFooterLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req FooterLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	link, err := h.FooterService.UpdateLink(id, req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, link)
}

// DeleteFooterLink 删除页脚链接
func (h *Handler) DeleteFooterLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.FooterService.DeleteLink(id); err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}

func (r FooterSectionRequest) toInput() service.FooterSectionInput {
	return service.FooterSectionInput{
		Title:     r.Title,
		IsActive:  boolOrDefault(r.IsActive, true),
		SortOrder: r.SortOrder,
	}
}

func (r FooterLinkRequest) toInput() service.FooterLinkInput {
	return service.FooterLinkInput{
		SectionID: r.SectionID,
		Label:     r.Label,
		URL:       r.URL,
		SortOrder: r.SortOrder,
	}
}
