package repository

import (
	"errors"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// ProductSectionRepository 首页商品区块数据访问接口
type ProductSectionRepository interface {
	ContentRepository[models.ProductSection]
	CountBySlug(slug string, excludeID uint) (int64, error)
	GetBySlug(slug string) (*models.ProductSection, error)
}

// GormProductSectionRepository GORM 实现
type GormProductSectionRepository struct {
	*GormContentRepository[models.ProductSection]
	db *gorm.DB
}

// NewProductSectionRepository 创建商品区块仓库
func NewProductSectionRepository(db *gorm.DB) *GormProductSectionRepository {
	return &GormProductSectionRepository{
		GormContentRepository: NewContentRepository[models.ProductSection](db),
		db:                    db,
	}
}

// GetBySlug 根据 slug 获取启用的区块
func (r *GormProductSectionRepository) GetBySlug(slug string) (*models.ProductSection, error) {
	var section models.ProductSection
	if err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

// CountBySlug 统计 slug 数量
func (r *GormProductSectionRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.ProductSection{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
