package admin

import (
	"strings"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/repository"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentRoutes CMS 实体的标准 CRUD 处理函数
type ContentRoutes struct {
	List   gin.HandlerFunc
	Get    gin.HandlerFunc
	Create gin.HandlerFunc
	Update gin.HandlerFunc
	Delete gin.HandlerFunc
}

// MidBannerRequest 中部横幅请求
type MidBannerRequest struct {
	Title     string `json:"title" binding:"max=200"`
	Image     string `json:"image" binding:"required"`
	LinkURL   string `json:"link_url"`
	Position  string `json:"position" binding:"max=40"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// FeatureCardRequest 特色卡片请求
type FeatureCardRequest struct {
	Title       string `json:"title" binding:"required,max=120"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// SocialLinkRequest 社交链接请求
type SocialLinkRequest struct {
	Platform  string `json:"platform" binding:"required,max=40"`
	URL       string `json:"url" binding:"required,url"`
	Icon      string `json:"icon"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// MenuItemRequest 菜单项请求
type MenuItemRequest struct {
	Label     string `json:"label" binding:"required,max=120"`
	URL       string `json:"url" binding:"required"`
	ParentID  *uint  `json:"parent_id"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// ProductSectionRequest 首页商品区块请求
type ProductSectionRequest struct {
	Title      string `json:"title" binding:"required,max=120"`
	Slug       string `json:"slug" binding:"omitempty,slug"`
	Type       string `json:"type" binding:"required"`
	CategoryID *uint  `json:"category_id"`
	ProductIDs []uint `json:"product_ids"`
	ItemLimit  int    `json:"item_limit" binding:"min=0"`
	IsActive   *bool  `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
}

// MidBannerRoutes 中部横幅
func (h *Handler) MidBannerRoutes() ContentRoutes {
	return newContentRoutes(h.MidBannerService, func(r MidBannerRequest) service.MidBannerInput {
		return service.MidBannerInput{
			Title:     r.Title,
			Image:     r.Image,
			LinkURL:   r.LinkURL,
			Position:  r.Position,
			IsActive:  boolOrDefault(r.IsActive, true),
			SortOrder: r.SortOrder,
		}
	})
}

// FeatureCardRoutes 特色卡片
func (h *Handler) FeatureCardRoutes() ContentRoutes {
	return newContentRoutes(h.FeatureCardService, func(r FeatureCardRequest) service.FeatureCardInput {
		return service.FeatureCardInput{
			Title:       r.Title,
			Description: r.Description,
			Icon:        r.Icon,
			IsActive:    boolOrDefault(r.IsActive, true),
			SortOrder:   r.SortOrder,
		}
	})
}

// SocialLinkRoutes 社交链接
func (h *Handler) SocialLinkRoutes() ContentRoutes {
	return newContentRoutes(h.SocialLinkService, func(r SocialLinkRequest) service.SocialLinkInput {
		return service.SocialLinkInput{
			Platform:  r.Platform,
			URL:       r.URL,
			Icon:      r.Icon,
			IsActive:  boolOrDefault(r.IsActive, true),
			SortOrder: r.SortOrder,
		}
	})
}

// MenuItemRoutes 菜单项
func (h *Handler) MenuItemRoutes() ContentRoutes {
	return newContentRoutes(h.MenuItemService, func(r MenuItemRequest) service.MenuItemInput {
		return service.MenuItemInput{
			Label:     r.Label,
			URL:       r.URL,
			ParentID:  r.ParentID,
			IsActive:  boolOrDefault(r.IsActive, true),
			SortOrder: r.SortOrder,
		}
	})
}

// ProductSectionRoutes 首页商品区块
func (h *Handler) ProductSectionRoutes() ContentRoutes {
	return newContentRoutes(h.ProductSectionService, func(r ProductSectionRequest) service.ProductSectionInput {
		return service.ProductSectionInput{
			Title:      r.Title,
			Slug:       r.Slug,
			Type:       r.Type,
			CategoryID: r.CategoryID,
			ProductIDs: r.ProductIDs,
			ItemLimit:  r.ItemLimit,
			IsActive:   boolOrDefault(r.IsActive, true),
			SortOrder:  r.SortOrder,
		}
	})
}

// GetMenuTree 后台菜单树（含未启用项）
func (h *Handler) GetMenuTree(c *gin.Context) {
	items, err := h.MenuItemRepo.ListAll()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, service.BuildMenuTree(items))
}

func newContentRoutes[T any, I any, R any](svc *service.ContentService[T, I], toInput func(R) I) ContentRoutes {
	return ContentRoutes{
		List: func(c *gin.Context) {
			page, pageSize := handlershared.ParsePagination(c)
			isActive, ok := handlershared.ParseOptionalBool(c, "is_active")
			if !ok {
				return
			}
			items, total, err := svc.List(repository.ContentListFilter{
				Page:     page,
				PageSize: pageSize,
				IsActive: isActive,
				Position: strings.TrimSpace(c.Query("position")),
			})
			if err != nil {
				respondError(c, response.CodeInternal, "error.internal", err)
				return
			}
			handlershared.Page(c, items, page, pageSize, total)
		},
		Get: func(c *gin.Context) {
			id, ok := parseID(c)
			if !ok {
				return
			}
			item, err := svc.Get(id)
			if err != nil {
				respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
				return
			}
			response.Success(c, item)
		},
		Create: func(c *gin.Context) {
			var req R
			if err := c.ShouldBindJSON(&req); err != nil {
				respondBindError(c, err)
				return
			}
			item, err := svc.Create(toInput(req))
			if err != nil {
				respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
				return
			}
			response.Created(c, item)
		},
		Update: func(c *gin.Context) {
			id, ok := parseID(c)
			if !ok {
				return
			}
			var req R
			if err := c.ShouldBindJSON(&req); err != nil {
				respondBindError(c, err)
				return
			}
			item, err := svc.Update(id, toInput(req))
			if err != nil {
				respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
				return
			}
			response.Success(c, item)
		},
		Delete: func(c *gin.Context) {
			id, ok := parseID(c)
			if !ok {
				return
			}
			if err := svc.Delete(id); err != nil {
				respondMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.save_failed")
				return
			}
			response.Success(c, nil)
		},
	}
}
