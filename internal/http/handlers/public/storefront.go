package public

import (
	"errors"
	"strings"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetConfig 站点配置、菜单与页脚
func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.StorefrontService.SiteConfig(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, cfg)
}

// GetHome 首页轮播、横幅、卡片与商品区块
func (h *Handler) GetHome(c *gin.Context) {
	home, err := h.StorefrontService.Home(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, home)
}

// GetCategories 启用的分类树
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.StorefrontService.CategoryTree(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// GetCategoryBySlug 分类详情（含子分类）
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	category, err := h.CategoryService.GetActiveBySlug(strings.TrimSpace(c.Param("slug")))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, category)
}

// GetProducts 前台商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	minPrice, ok := handlershared.ParseOptionalFloat(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := handlershared.ParseOptionalFloat(c, "max_price")
	if !ok {
		return
	}
	query := service.PublicProductQuery{
		Page:            page,
		PageSize:        pageSize,
		CategorySlug:    strings.TrimSpace(c.Query("category")),
		SubCategorySlug: strings.TrimSpace(c.Query("subcategory")),
		Search:          strings.TrimSpace(c.Query("search")),
		MinPrice:        minPrice,
		MaxPrice:        maxPrice,
		Featured:        queryFlag(c, "featured"),
		NewArrival:      queryFlag(c, "new_arrival"),
		BestSeller:      queryFlag(c, "best_seller"),
		Sort:            strings.TrimSpace(c.Query("sort")),
	}
	products, total, err := h.ProductService.ListPublic(query)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	handlershared.Page(c, products, page, pageSize, total)
}

// GetProductBySlug 前台商品详情（规格、评价汇总、已发布问答）
func (h *Handler) GetProductBySlug(c *gin.Context) {
	detail, err := h.ProductService.GetPublicDetail(strings.TrimSpace(c.Param("slug")))
	if err != nil {
		respondMappedError(c, err, productLookupErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, detail)
}

var productLookupErrorRules = []handlershared.MappedError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
}

func queryFlag(c *gin.Context, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
