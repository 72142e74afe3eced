package repository

import (
	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// ContentRepository 带 is_active/sort_order 的 CMS 实体通用数据访问接口
type ContentRepository[T any] interface {
	List(filter ContentListFilter) ([]T, int64, error)
	ListActive() ([]T, error)
	GetByID(id uint) (*T, error)
	Create(item *T) error
	Update(item *T) error
	Delete(id uint) error
}

// GormContentRepository GORM 实现
type GormContentRepository[T any] struct {
	db *gorm.DB
}

// NewContentRepository 创建 CMS 通用仓库
func NewContentRepository[T any](db *gorm.DB) *GormContentRepository[T] {
	return &GormContentRepository[T]{db: db}
}

// NewMidBannerRepository 中部横幅仓库
func NewMidBannerRepository(db *gorm.DB) *GormContentRepository[models.MidBanner] {
	return NewContentRepository[models.MidBanner](db)
}

// NewFeatureCardRepository 特色卡片仓库
func NewFeatureCardRepository(db *gorm.DB) *GormContentRepository[models.FeatureCard] {
	return NewContentRepository[models.FeatureCard](db)
}

// NewSocialLinkRepository 社交链接仓库
func NewSocialLinkRepository(db *gorm.DB) *GormContentRepository[models.SocialLink] {
	return NewContentRepository[models.SocialLink](db)
}

// List 分页列表
func (r *GormContentRepository[T]) List(filter ContentListFilter) ([]T, int64, error) {
	query := applyActiveFilter(r.db.Model(new(T)), "is_active", filter.IsActive)
	if filter.Position != "" {
		query = query.Where("position = ?", filter.Position)
	}
	return countAndFind[T](query, filter.Page, filter.PageSize, defaultSortOrder)
}

// ListActive 全部启用项
func (r *GormContentRepository[T]) ListActive() ([]T, error) {
	items := make([]T, 0)
	if err := r.db.Where("is_active = ?", true).Order(defaultSortOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取
func (r *GormContentRepository[T]) GetByID(id uint) (*T, error) {
	return firstOrNil[T](r.db, id)
}

// Create 创建
func (r *GormContentRepository[T]) Create(item *T) error {
	return r.db.Create(item).Error
}

// Update 更新
func (r *GormContentRepository[T]) Update(item *T) error {
	return r.db.Save(item).Error
}

// Delete 删除
func (r *GormContentRepository[T]) Delete(id uint) error {
	return r.db.Delete(new(T), id).Error
}
