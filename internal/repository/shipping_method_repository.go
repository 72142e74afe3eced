package repository

import (
	"errors"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// ShippingMethodRepository 配送方式数据访问接口
type ShippingMethodRepository interface {
	List(filter ShippingMethodListFilter) ([]models.ShippingMethod, int64, error)
	ListActive() ([]models.ShippingMethod, error)
	CountActive() (int64, error)
	GetByID(id uint) (*models.ShippingMethod, error)
	Create(method *models.ShippingMethod) error
	Update(method *models.ShippingMethod) error
	Delete(id uint) error
}

// GormShippingMethodRepository GORM 实现
type GormShippingMethodRepository struct {
	db *gorm.DB
}

// NewShippingMethodRepository 创建配送方式仓库
func NewShippingMethodRepository(db *gorm.DB) *GormShippingMethodRepository {
	return &GormShippingMethodRepository{db: db}
}

// List 配送方式列表
func (r *GormShippingMethodRepository) List(filter ShippingMethodListFilter) ([]models.ShippingMethod, int64, error) {
	query := applyActiveFilter(r.db.Model(&models.ShippingMethod{}), "is_active", filter.IsActive)
	return countAndFind[models.ShippingMethod](query, filter.Page, filter.PageSize, defaultSortOrder)
}

// ListActive 全部启用的配送方式
func (r *GormShippingMethodRepository) ListActive() ([]models.ShippingMethod, error) {
	methods := make([]models.ShippingMethod, 0)
	if err := r.db.Where("is_active = ?", true).Order(defaultSortOrder).Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// CountActive 统计启用的配送方式数量
func (r *GormShippingMethodRepository) CountActive() (int64, error) {
	var count int64
	if err := r.db.Model(&models.ShippingMethod{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetByID 根据 ID 获取配送方式
func (r *GormShippingMethodRepository) GetByID(id uint) (*models.ShippingMethod, error) {
	var method models.ShippingMethod
	if err := r.db.First(&method, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

// Create 创建配送方式
func (r *GormShippingMethodRepository) Create(method *models.ShippingMethod) error {
	return r.db.Create(method).Error
}

// Update 更新配送方式
func (r *GormShippingMethodRepository) Update(method *models.ShippingMethod) error {
	return r.db.Save(method).Error
}

// Delete 删除配送方式，历史订单保留名称快照
func (r *GormShippingMethodRepository) Delete(id uint) error {
	return r.db.Delete(&models.ShippingMethod{}, id).Error
}
