package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// VariantRequest 商品规格请求
type VariantRequest struct {
	Name         string                 `json:"name" binding:"required,max=120"`
	SKU          string                 `json:"sku" binding:"max=64"`
	Price        decimal.Decimal        `json:"price"`
	ComparePrice *decimal.Decimal       `json:"compare_price"`
	Stock        int                    `json:"stock" binding:"min=0"`
	Attributes   map[string]interface{} `json:"attributes"`
	Image        string                 `json:"image"`
	IsActive     *bool                  `json:"is_active"`
	SortOrder    int                    `json:"sort_order"`
}

// ProductRequest 商品创建/更新请求
type ProductRequest struct {
	CategoryID    uint             `json:"category_id" binding:"required"`
	SubCategoryID *uint            `json:"subcategory_id"`
	Name          string           `json:"name" binding:"required,max=200"`
	Slug          string           `json:"slug" binding:"omitempty,slug"`
	Description   string           `json:"description"`
	Brand         string           `json:"brand" binding:"max=120"`
	Price         decimal.Decimal  `json:"price"`
	ComparePrice  *decimal.Decimal `json:"compare_price"`
	Images        []string         `json:"images"`
	Tags          []string         `json:"tags"`
	Stock         int              `json:"stock" binding:"min=0"`
	IsActive      *bool            `json:"is_active"`
	IsFeatured    bool             `json:"is_featured"`
	IsNewArrival  bool             `json:"is_new_arrival"`
	IsBestSeller  bool             `json:"is_best_seller"`
	SortOrder     int              `json:"sort_order"`
	Variants      []VariantRequest `json:"variants" binding:"dive"`
}

func (r VariantRequest) toInput() service.VariantInput {
	return service.VariantInput{
		Name:         r.Name,
		SKU:          r.SKU,
		Price:        r.Price,
		ComparePrice: r.ComparePrice,
		Stock:        r.Stock,
		Attributes:   r.Attributes,
		Image:        r.Image,
		IsActive:     boolOrDefault(r.IsActive, true),
		SortOrder:    r.SortOrder,
	}
}

func (r ProductRequest) toInput() service.ProductInput {
	variants := make([]service.VariantInput, 0, len(r.Variants))
	for _, v := range r.Variants {
		variants = append(variants, v.toInput())
	}
	return service.ProductInput{
		CategoryID:    r.CategoryID,
		SubCategoryID: r.SubCategoryID,
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   r.Description,
		Brand:         r.Brand,
		Price:         r.Price,
		ComparePrice:  r.ComparePrice,
		Images:        r.Images,
		Tags:          r.Tags,
		Stock:         r.Stock,
		IsActive:      boolOrDefault(r.IsActive, true),
		IsFeatured:    r.IsFeatured,
		IsNewArrival:  r.IsNewArrival,
		IsBestSeller:  r.IsBestSeller,
		SortOrder:     r.SortOrder,
		Variants:      variants,
	}
}

// GetAdminProducts 商品列表
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	isActive, ok := handlershared.ParseOptionalBool(c, "is_active")
	if !ok {
		return
	}
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	subCategoryID, _ := strconv.ParseUint(c.Query("subcategory_id"), 10, 64)
	products, total, err := h.ProductService.ListAdmin(repository.ProductListFilter{
		Page:          page,
		PageSize:      pageSize,
		CategoryID:    uint(categoryID),
		SubCategoryID: uint(subCategoryID),
		Search:        strings.TrimSpace(c.Query("search")),
		IsActive:      isActive,
		Sort:          strings.TrimSpace(c.Query("sort")),
		WithCategory:  true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, products, page, pageSize, total)
}

// GetAdminProduct 商品详情（含全部规格）
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetAdminByID(id)
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品（可同时创建规格）
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}

// CreateProductVariant 新增规格
func (h *Handler) CreateProductVariant(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		return
	}
	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	variant, err := h.ProductService.CreateVariant(productID, req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, variant)
}

// UpdateProductVariant 更新规格
func (h *Handler) UpdateProductVariant(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		return
	}
	variantID, ok := handlershared.ParseIDParam(c, "variant_id")
	if !ok {
		return
	}
	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	variant, err := h.ProductService.UpdateVariant(productID, variantID, req.toInput())
	if err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, variant)
}

// DeleteProductVariant 删除规格
func (h *Handler) DeleteProductVariant(c *gin.Context) {
	productID, ok := parseID(c)
	if !ok {
		return
	}
	variantID, ok := handlershared.ParseIDParam(c, "variant_id")
	if !ok {
		return
	}
	if err := h.ProductService.DeleteVariant(productID, variantID); err != nil {
		respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, nil)
}
