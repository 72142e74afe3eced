package repository

import (
	"errors"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	List(filter CategoryListFilter) ([]models.Category, int64, error)
	ListActiveTree() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string, onlyActive bool) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID uint) (int64, error)
	CountProducts(categoryID uint) (int64, error)
	CountSubCategories(categoryID uint) (int64, error)
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 分类列表（后台）
func (r *GormCategoryRepository) List(filter CategoryListFilter) ([]models.Category, int64, error) {
	query := r.db.Model(&models.Category{})
	query = applyKeywordSearch(query, filter.Search, "name", "slug")
	query = applyActiveFilter(query, "is_active", filter.IsActive)
	if filter.WithChild {
		query = query.Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order(defaultSortOrder)
		})
	}
	return countAndFind[models.Category](query, filter.Page, filter.PageSize, defaultSortOrder)
}

// ListActiveTree 启用的分类及其启用的子分类
func (r *GormCategoryRepository) ListActiveTree() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.db.
		Where("is_active = ?", true).
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order(defaultSortOrder)
		}).
		Order(defaultSortOrder).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID 根据 ID 获取分类
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("SubCategories").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug 根据 slug 获取分类
func (r *GormCategoryRepository) GetBySlug(slug string, onlyActive bool) (*models.Category, error) {
	var category models.Category
	query := r.db.Where("slug = ?", slug)
	childQuery := func(db *gorm.DB) *gorm.DB { return db.Order(defaultSortOrder) }
	if onlyActive {
		query = query.Where("is_active = ?", true)
		childQuery = func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order(defaultSortOrder)
		}
	}
	if err := query.Preload("SubCategories", childQuery).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create 创建分类
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update 更新分类
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Omit("SubCategories").Save(category).Error
}

// Delete 删除分类
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// CountBySlug 统计 slug 数量，excludeID 为 0 时不排除
func (r *GormCategoryRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts 统计分类下商品数量
func (r *GormCategoryRepository) CountProducts(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountSubCategories 统计分类下子分类数量
func (r *GormCategoryRepository) CountSubCategories(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.SubCategory{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
