package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 分类创建/更新请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Slug        string `json:"slug" binding:"omitempty,slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// SubCategoryRequest 子分类创建/更新请求
type SubCategoryRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Name       string `json:"name" binding:"required,max=120"`
	Slug       string `json:"slug" binding:"omitempty,slug"`
	Image      string `json:"image"`
	SortOrder  int    `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       r.Image,
		SortOrder:   r.SortOrder,
		IsActive:    boolOrDefault(r.IsActive, true),
	}
}

func (r SubCategoryRequest) toInput() service.SubCategoryInput {
	return service.SubCategoryInput{
		CategoryID: r.CategoryID,
		Name:       r.Name,
		Slug:       r.Slug,
		Image:      r.Image,
		SortOrder:  r.SortOrder,
		IsActive:   boolOrDefault(r.IsActive, true),
	}
}

// GetAdminCategories 分类列表
func (h *Handler) GetAdminCategories(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, ok := handlershared.ParseOptionalBool(c, "is_active")
	if !ok {
		return
	}
	categories, total, err := h.CategoryService.List(repository.CategoryListFilter{
		Page:      page,
		PageSize:  pageSize,
		Search:    strings.TrimSpace(c.Query("search")),
		IsActive:  isActive,
		WithChild: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, categories, page, pageSize, total)
}

// GetAdminCategory 分类详情
func (h *Handler) GetAdminCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, category)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.CategoryService.Create(req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.CategoryService.Update(id, req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类（存在商品或子分类时拒绝）
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}

// GetAdminSubCategories 子分类列表
func (h *Handler) GetAdminSubCategories(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, ok := handlershared.ParseOptionalBool(c, "is_active")
	if !ok {
		return
	}
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	subs, total, err := h.CategoryService.ListSubCategories(repository.SubCategoryListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: uint(categoryID),
		Search:     strings.TrimSpace(c.Query("search")),
		IsActive:   isActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, subs, page, pageSize, total)
}

// GetAdminSubCategory 子分类详情
func (h *Handler) GetAdminSubCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sub, err := h.CategoryService.GetSubCategory(id)
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, sub)
}

// CreateSubCategory 创建子分类
func (h *Handler) CreateSubCategory(c *gin.Context) {
	var req SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sub, err := h.CategoryService.CreateSubCategory(req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, sub)
}

// UpdateSubCategory 更新子分类
func (h *Handler) UpdateSubCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sub, err := h.CategoryService.UpdateSubCategory(id, req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, sub)
}

// DeleteSubCategory 删除子分类（存在商品时拒绝）
func (h *Handler) DeleteSubCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.CategoryService.DeleteSubCategory(id); err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
