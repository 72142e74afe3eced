package service

import (
	"context"

	"github.com/bazaar-next/internal/cache"
	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// SiteConfig 前台站点配置聚合
type SiteConfig struct {
	Basic          models.BasicSettings   `json:"basic"`
	Footer         models.FooterSettings  `json:"footer"`
	Contact        models.ContactInfo     `json:"contact"`
	SocialLinks    []models.SocialLink    `json:"social_links"`
	Menu           []models.MenuItem      `json:"menu"`
	FooterSections []models.FooterSection `json:"footer_sections"`
}

// HomeSection 首页商品区块（已解析商品）
type HomeSection struct {
	ID       uint             `json:"id"`
	Title    string           `json:"title"`
	Slug     string           `json:"slug"`
	Type     string           `json:"type"`
	Products []models.Product `json:"products"`
}

// HomePage 首页聚合
type HomePage struct {
	Banners      []models.Banner      `json:"banners"`
	MidBanners   []models.MidBanner   `json:"mid_banners"`
	FeatureCards []models.FeatureCard `json:"feature_cards"`
	Sections     []HomeSection        `json:"sections"`
}

// StorefrontService 前台聚合服务，结果写入 redis 缓存
type StorefrontService struct {
	settingService *SettingService
	bannerService  *BannerService
	categoryRepo   repository.CategoryRepository
	productRepo    repository.ProductRepository
	midBannerRepo  repository.ContentRepository[models.MidBanner]
	featureRepo    repository.ContentRepository[models.FeatureCard]
	socialRepo     repository.ContentRepository[models.SocialLink]
	menuRepo       repository.MenuItemRepository
	sectionRepo    repository.ProductSectionRepository
	footerRepo     repository.FooterRepository
}

// StorefrontDeps 前台聚合服务依赖
type StorefrontDeps struct {
	SettingService *SettingService
	BannerService  *BannerService
	CategoryRepo   repository.CategoryRepository
	ProductRepo    repository.ProductRepository
	MidBannerRepo  repository.ContentRepository[models.MidBanner]
	FeatureRepo    repository.ContentRepository[models.FeatureCard]
	SocialRepo     repository.ContentRepository[models.SocialLink]
	MenuRepo       repository.MenuItemRepository
	SectionRepo    repository.ProductSectionRepository
	FooterRepo     repository.FooterRepository
}

// NewStorefrontService 创建前台聚合服务
func NewStorefrontService(deps StorefrontDeps) *StorefrontService {
	return &StorefrontService{
		settingService: deps.SettingService,
		bannerService:  deps.BannerService,
		categoryRepo:   deps.CategoryRepo,
		productRepo:    deps.ProductRepo,
		midBannerRepo:  deps.MidBannerRepo,
		featureRepo:    deps.FeatureRepo,
		socialRepo:     deps.SocialRepo,
		menuRepo:       deps.MenuRepo,
		sectionRepo:    deps.SectionRepo,
		footerRepo:     deps.FooterRepo,
	}
}

// SiteConfig 站点配置（缓存）
func (s *StorefrontService) SiteConfig(ctx context.Context) (*SiteConfig, error) {
	return cache.GetOrLoad(ctx, constants.CacheKeySiteConfig, s.loadSiteConfig)
}

// Home 首页数据（缓存）
func (s *StorefrontService) Home(ctx context.Context) (*HomePage, error) {
	return cache.GetOrLoad(ctx, constants.CacheKeyHomePage, s.loadHome)
}

// CategoryTree 启用的分类树（缓存）
func (s *StorefrontService) CategoryTree(ctx context.Context) ([]models.Category, error) {
	return cache.GetOrLoad(ctx, constants.CacheKeyCategoryTree, s.categoryRepo.ListActiveTree)
}

func (s *StorefrontService) loadSiteConfig() (*SiteConfig, error) {
	settings, err := s.settingService.Snapshot()
	if err != nil {
		return nil, err
	}
	socialLinks, err := s.socialRepo.ListActive()
	if err != nil {
		return nil, err
	}
	menuItems, err := s.menuRepo.ListAll()
	if err != nil {
		return nil, err
	}
	sections, err := s.footerRepo.ListActiveSections()
	if err != nil {
		return nil, err
	}
	return &SiteConfig{
		Basic:          settings.Basic,
		Footer:         settings.Footer,
		Contact:        settings.Contact,
		SocialLinks:    socialLinks,
		Menu:           pruneInactiveMenu(BuildMenuTree(menuItems)),
		FooterSections: sections,
	}, nil
}

func (s *StorefrontService) loadHome() (*HomePage, error) {
	banners, err := s.bannerService.ListPublic()
	if err != nil {
		return nil, err
	}
	midBanners, err := s.midBannerRepo.ListActive()
	if err != nil {
		return nil, err
	}
	cards, err := s.featureRepo.ListActive()
	if err != nil {
		return nil, err
	}
	sections, err := s.sectionRepo.ListActive()
	if err != nil {
		return nil, err
	}
	home := &HomePage{
		Banners:      banners,
		MidBanners:   midBanners,
		FeatureCards: cards,
		Sections:     make([]HomeSection, 0, len(sections)),
	}
	for i := range sections {
		products, err := s.resolveSectionProducts(&sections[i])
		if err != nil {
			return nil, err
		}
		home.Sections = append(home.Sections, HomeSection{
			ID:       sections[i].ID,
			Title:    sections[i].Title,
			Slug:     sections[i].Slug,
			Type:     sections[i].Type,
			Products: products,
		})
	}
	return home, nil
}

// resolveSectionProducts 按区块类型解析商品
func (s *StorefrontService) resolveSectionProducts(section *models.ProductSection) ([]models.Product, error) {
	limit := section.ItemLimit
	if limit <= 0 {
		limit = constants.SectionItemLimitDefault
	}
	if limit > constants.SectionItemLimitMax {
		limit = constants.SectionItemLimitMax
	}
	filter := repository.ProductListFilter{
		Page:       1,
		PageSize:   limit,
		OnlyActive: true,
		Sort:       constants.ProductSortNewest,
	}
	switch section.Type {
	case constants.SectionTypeFeatured:
		filter.Featured = true
	case constants.SectionTypeNewArrival:
		filter.NewArrival = true
	case constants.SectionTypeBestSeller:
		filter.BestSeller = true
	case constants.SectionTypeCategory:
		if section.CategoryID == nil {
			return []models.Product{}, nil
		}
		filter.CategoryID = *section.CategoryID
	case constants.SectionTypeCustom:
		return s.resolveCustomSection(section.ProductIDs, limit)
	default:
		return []models.Product{}, nil
	}
	products, _, err := s.productRepo.List(filter)
	return products, err
}

// resolveCustomSection 自定义区块按配置顺序返回上架商品
func (s *StorefrontService) resolveCustomSection(ids models.UintArray, limit int) ([]models.Product, error) {
	products, err := s.productRepo.ListByIDs(ids, true)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	result := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		product, ok := byID[id]
		if !ok {
			continue
		}
		result = append(result, product)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

// pruneInactiveMenu 移除未启用的菜单及其子树
func pruneInactiveMenu(items []models.MenuItem) []models.MenuItem {
	result := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		item.Children = pruneInactiveMenu(item.Children)
		if len(item.Children) == 0 {
			item.Children = nil
		}
		result = append(result, item)
	}
	return result
}
