package repository

import (
	"errors"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// SubCategoryRepository 子分类数据访问接口
type SubCategoryRepository interface {
	List(filter SubCategoryListFilter) ([]models.SubCategory, int64, error)
	GetByID(id uint) (*models.SubCategory, error)
	GetBySlug(slug string) (*models.SubCategory, error)
	Create(sub *models.SubCategory) error
	Update(sub *models.SubCategory) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID uint) (int64, error)
	CountProducts(subCategoryID uint) (int64, error)
}

// GormSubCategoryRepository GORM 实现
type GormSubCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository 创建子分类仓库
func NewSubCategoryRepository(db *gorm.DB) *GormSubCategoryRepository {
	return &GormSubCategoryRepository{db: db}
}

// List 子分类列表
func (r *GormSubCategoryRepository) List(filter SubCategoryListFilter) ([]models.SubCategory, int64, error) {
	query := r.db.Model(&models.SubCategory{}).Preload("Category")
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	query = applyKeywordSearch(query, filter.Search, "name", "slug")
	query = applyActiveFilter(query, "is_active", filter.IsActive)
	return countAndFind[models.SubCategory](query, filter.Page, filter.PageSize, defaultSortOrder)
}

// GetByID 根据 ID 获取子分类
func (r *GormSubCategoryRepository) GetByID(id uint) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := r.db.Preload("Category").First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// GetBySlug 根据 slug 获取子分类
func (r *GormSubCategoryRepository) GetBySlug(slug string) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := r.db.Where("slug = ?", slug).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// Create 创建子分类
func (r *GormSubCategoryRepository) Create(sub *models.SubCategory) error {
	return r.db.Omit("Category").Create(sub).Error
}

// Update 更新子分类
func (r *GormSubCategoryRepository) Update(sub *models.SubCategory) error {
	return r.db.Omit("Category").Save(sub).Error
}

// Delete 删除子分类
func (r *GormSubCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.SubCategory{}, id).Error
}

// CountBySlug 统计 slug 数量
func (r *GormSubCategoryRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.SubCategory{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts 统计子分类下商品数量
func (r *GormSubCategoryRepository) CountProducts(subCategoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("sub_category_id = ?", subCategoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
