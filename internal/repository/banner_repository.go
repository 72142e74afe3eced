package repository

import (
	"time"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// BannerRepository 首页轮播数据访问接口，在通用 CMS 仓库之上增加投放时间窗
type BannerRepository interface {
	List(filter BannerListFilter) ([]models.Banner, int64, error)
	ListValid(limit int, now time.Time) ([]models.Banner, error)
	GetByID(id uint) (*models.Banner, error)
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id uint) error
}

// GormBannerRepository 复用 GormContentRepository 的单条读写
type GormBannerRepository struct {
	*GormContentRepository[models.Banner]
	db *gorm.DB
}

// NewBannerRepository 创建轮播仓库
func NewBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{GormContentRepository: NewContentRepository[models.Banner](db), db: db}
}

// inBannerWindow 启用且 now 落在 [start_at, end_at] 内，边界为空视为不限
func inBannerWindow(query *gorm.DB, now time.Time) *gorm.DB {
	return query.Where("is_active = ?", true).
		Where("(start_at IS NULL OR start_at <= ?)", now).
		Where("(end_at IS NULL OR end_at >= ?)", now)
}

// List 后台列表；OnlyValid 时只看当前在投放的
func (r *GormBannerRepository) List(filter BannerListFilter) ([]models.Banner, int64, error) {
	query := r.db.Model(&models.Banner{})
	if filter.OnlyValid {
		query = inBannerWindow(query, time.Now())
	} else {
		query = applyActiveFilter(query, "is_active", filter.IsActive)
	}
	query = applyKeywordSearch(query, filter.Search, "title", "subtitle")
	return countAndFind[models.Banner](query, filter.Page, filter.PageSize, defaultSortOrder)
}

// ListValid 前台轮播，limit<=0 表示不限条数
func (r *GormBannerRepository) ListValid(limit int, now time.Time) ([]models.Banner, error) {
	query := inBannerWindow(r.db.Model(&models.Banner{}), now).Order(defaultSortOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}
	banners := make([]models.Banner, 0)
	return banners, query.Find(&banners).Error
}
