package service

import (
	"sort"
	"strings"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// MidBannerInput 中部横幅输入
type MidBannerInput struct {
	Title     string
	Image     string
	LinkURL   string
	Position  string
	IsActive  bool
	SortOrder int
}

// FeatureCardInput 特色卡片输入
type FeatureCardInput struct {
	Title       string
	Description string
	Icon        string
	IsActive    bool
	SortOrder   int
}

// SocialLinkInput 社交链接输入
type SocialLinkInput struct {
	Platform  string
	URL       string
	Icon      string
	IsActive  bool
	SortOrder int
}

// MenuItemInput 菜单项输入
type MenuItemInput struct {
	Label     string
	URL       string
	ParentID  *uint
	IsActive  bool
	SortOrder int
}

// ProductSectionInput 首页商品区块输入
type ProductSectionInput struct {
	Title      string
	Slug       string
	Type       string
	CategoryID *uint
	ProductIDs []uint
	ItemLimit  int
	IsActive   bool
	SortOrder  int
}

// MidBannerService 中部横幅服务
type MidBannerService = ContentService[models.MidBanner, MidBannerInput]

// FeatureCardService 特色卡片服务
type FeatureCardService = ContentService[models.FeatureCard, FeatureCardInput]

// SocialLinkService 社交链接服务
type SocialLinkService = ContentService[models.SocialLink, SocialLinkInput]

// MenuItemService 菜单服务
type MenuItemService = ContentService[models.MenuItem, MenuItemInput]

// ProductSectionService 商品区块服务
type ProductSectionService = ContentService[models.ProductSection, ProductSectionInput]

const midBannerPositionDefault = "middle"

// NewMidBannerService 创建中部横幅服务
func NewMidBannerService(repo repository.ContentRepository[models.MidBanner]) *MidBannerService {
	return NewContentService(repo, func(item *models.MidBanner, _ uint, input MidBannerInput) error {
		image := strings.TrimSpace(input.Image)
		if image == "" {
			return ErrInvalidInput
		}
		position := strings.ToLower(strings.TrimSpace(input.Position))
		if position == "" {
			position = midBannerPositionDefault
		}
		item.Title = strings.TrimSpace(input.Title)
		item.Image = image
		item.LinkURL = strings.TrimSpace(input.LinkURL)
		item.Position = position
		item.IsActive = input.IsActive
		item.SortOrder = input.SortOrder
		return nil
	})
}

// NewFeatureCardService 创建特色卡片服务
func NewFeatureCardService(repo repository.ContentRepository[models.FeatureCard]) *FeatureCardService {
	return NewContentService(repo, func(item *models.FeatureCard, _ uint, input FeatureCardInput) error {
		title := strings.TrimSpace(input.Title)
		if title == "" {
			return ErrInvalidInput
		}
		item.Title = title
		item.Description = strings.TrimSpace(input.Description)
		item.Icon = strings.TrimSpace(input.Icon)
		item.IsActive = input.IsActive
		item.SortOrder = input.SortOrder
		return nil
	})
}

// NewSocialLinkService 创建社交链接服务
func NewSocialLinkService(repo repository.ContentRepository[models.SocialLink]) *SocialLinkService {
	return NewContentService(repo, func(item *models.SocialLink, _ uint, input SocialLinkInput) error {
		platform := strings.ToLower(strings.TrimSpace(input.Platform))
		url := strings.TrimSpace(input.URL)
		if platform == "" || url == "" {
			return ErrInvalidInput
		}
		item.Platform = platform
		item.URL = url
		item.Icon = strings.TrimSpace(input.Icon)
		item.IsActive = input.IsActive
		item.SortOrder = input.SortOrder
		return nil
	})
}

// NewMenuItemService 创建菜单服务：上级菜单必须存在且不能形成环，有子菜单时禁止删除
func NewMenuItemService(repo repository.MenuItemRepository) *MenuItemService {
	svc := NewContentService[models.MenuItem, MenuItemInput](repo, func(item *models.MenuItem, id uint, input MenuItemInput) error {
		label := strings.TrimSpace(input.Label)
		url := strings.TrimSpace(input.URL)
		if label == "" || url == "" {
			return ErrInvalidInput
		}
		var parentID *uint
		if input.ParentID != nil && *input.ParentID > 0 {
			if err := validateMenuParent(repo, id, *input.ParentID); err != nil {
				return err
			}
			value := *input.ParentID
			parentID = &value
		}
		item.Label = label
		item.URL = url
		item.ParentID = parentID
		item.IsActive = input.IsActive
		item.SortOrder = input.SortOrder
		item.Children = nil
		return nil
	})
	return svc.WithDeleteGuard(func(id uint) error {
		count, err := repo.CountChildren(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrMenuItemHasChildren
		}
		return nil
	})
}

// validateMenuParent 校验上级菜单存在，且沿祖先链不会回到自身
func validateMenuParent(repo repository.MenuItemRepository, selfID, parentID uint) error {
	if selfID > 0 && parentID == selfID {
		return ErrMenuParentInvalid
	}
	items, err := repo.ListAll()
	if err != nil {
		return err
	}
	parents := make(map[uint]*uint, len(items))
	for _, item := range items {
		parents[item.ID] = item.ParentID
	}
	if _, ok := parents[parentID]; !ok {
		return ErrMenuParentInvalid
	}
	if selfID == 0 {
		return nil
	}
	visited := make(map[uint]struct{})
	current := &parentID
	for current != nil {
		if *current == selfID {
			return ErrMenuParentInvalid
		}
		if _, seen := visited[*current]; seen {
			return ErrMenuParentInvalid
		}
		visited[*current] = struct{}{}
		current = parents[*current]
	}
	return nil
}

// BuildMenuTree 将平铺菜单组装为树，孤儿节点挂到根
func BuildMenuTree(items []models.MenuItem) []models.MenuItem {
	byParent := make(map[uint][]models.MenuItem)
	known := make(map[uint]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}
	roots := make([]models.MenuItem, 0)
	for _, item := range items {
		if item.ParentID == nil {
			roots = append(roots, item)
			continue
		}
		if _, ok := known[*item.ParentID]; !ok {
			roots = append(roots, item)
			continue
		}
		byParent[*item.ParentID] = append(byParent[*item.ParentID], item)
	}
	var attach func(nodes []models.MenuItem, depth int) []models.MenuItem
	attach = func(nodes []models.MenuItem, depth int) []models.MenuItem {
		sortMenuItems(nodes)
		if depth > len(items) {
			return nodes
		}
		for i := range nodes {
			if children, ok := byParent[nodes[i].ID]; ok {
				nodes[i].Children = attach(children, depth+1)
			}
		}
		return nodes
	}
	return attach(roots, 0)
}

func sortMenuItems(items []models.MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].ID < items[j].ID
	})
}

// NewProductSectionService 创建商品区块服务
func NewProductSectionService(repo repository.ProductSectionRepository, categoryRepo repository.CategoryRepository) *ProductSectionService {
	return NewContentService[models.ProductSection, ProductSectionInput](repo, func(item *models.ProductSection, id uint, input ProductSectionInput) error {
		title := strings.TrimSpace(input.Title)
		if title == "" {
			return ErrInvalidInput
		}
		sectionType := strings.ToUpper(strings.TrimSpace(input.Type))
		if !containsString(constants.SectionTypes, sectionType) {
			return ErrSectionTypeInvalid
		}
		slug, err := resolveSlug(input.Slug, title)
		if err != nil {
			return err
		}
		count, err := repo.CountBySlug(slug, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlugExists
		}

		var categoryID *uint
		productIDs := models.UintArray{}
		switch sectionType {
		case constants.SectionTypeCategory:
			if input.CategoryID == nil || *input.CategoryID == 0 {
				return ErrInvalidInput
			}
			category, err := categoryRepo.GetByID(*input.CategoryID)
			if err != nil {
				return err
			}
			if category == nil {
				return ErrCategoryNotFound
			}
			value := category.ID
			categoryID = &value
		case constants.SectionTypeCustom:
			if len(input.ProductIDs) == 0 {
				return ErrInvalidInput
			}
			productIDs = uniqueUintList(input.ProductIDs)
		}

		limit := input.ItemLimit
		if limit <= 0 {
			limit = constants.SectionItemLimitDefault
		}
		if limit > constants.SectionItemLimitMax {
			limit = constants.SectionItemLimitMax
		}

		item.Title = title
		item.Slug = slug
		item.Type = sectionType
		item.CategoryID = categoryID
		item.ProductIDs = productIDs
		item.ItemLimit = limit
		item.IsActive = input.IsActive
		item.SortOrder = input.SortOrder
		return nil
	})
}

func uniqueUintList(values []uint) models.UintArray {
	result := make(models.UintArray, 0, len(values))
	seen := make(map[uint]struct{}, len(values))
	for _, value := range values {
		if value == 0 {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
