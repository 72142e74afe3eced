package service

import (
	"strings"
	"time"

	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// homeBannerLimit 首页主轮播最多展示数量
const homeBannerLimit = 10

// BannerService 首页主轮播服务
type BannerService struct {
	repo repository.BannerRepository
	now  func() time.Time
}

// NewBannerService 创建 Banner 服务
func NewBannerService(repo repository.BannerRepository) *BannerService {
	return &BannerService{repo: repo, now: time.Now}
}

// BannerInput 创建/更新 Banner 输入
type BannerInput struct {
	Title       string
	Subtitle    string
	Image       string
	MobileImage string
	LinkURL     string
	ButtonText  string
	IsActive    bool
	StartAt     *time.Time
	EndAt       *time.Time
	SortOrder   int
}

// ListAdmin 获取后台 Banner 列表
func (s *BannerService) ListAdmin(filter repository.BannerListFilter) ([]models.Banner, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(filter)
}

// ListPublic 获取当前时间窗口内启用的 Banner
func (s *BannerService) ListPublic() ([]models.Banner, error) {
	return s.repo.ListValid(homeBannerLimit, s.now())
}

// GetByID 根据 ID 获取 Banner
func (s *BannerService) GetByID(id uint) (*models.Banner, error) {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}
	return banner, nil
}

// Create 创建 Banner
func (s *BannerService) Create(input BannerInput) (*models.Banner, error) {
	banner := &models.Banner{}
	if err := applyBannerInput(banner, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return banner, nil
}

// Update 更新 Banner
func (s *BannerService) Update(id uint, input BannerInput) (*models.Banner, error) {
	banner, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := applyBannerInput(banner, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return banner, nil
}

// Delete 删除 Banner
func (s *BannerService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	invalidatePublicCache()
	return nil
}

func applyBannerInput(banner *models.Banner, input BannerInput) error {
	image := strings.TrimSpace(input.Image)
	if image == "" {
		return ErrInvalidInput
	}
	if input.StartAt != nil && input.EndAt != nil && input.EndAt.Before(*input.StartAt) {
		return ErrInvalidDateRange
	}
	banner.Title = strings.TrimSpace(input.Title)
	banner.Subtitle = strings.TrimSpace(input.Subtitle)
	banner.Image = image
	banner.MobileImage = strings.TrimSpace(input.MobileImage)
	banner.LinkURL = strings.TrimSpace(input.LinkURL)
	banner.ButtonText = strings.TrimSpace(input.ButtonText)
	banner.IsActive = input.IsActive
	banner.StartAt = input.StartAt
	banner.EndAt = input.EndAt
	banner.SortOrder = input.SortOrder
	return nil
}
