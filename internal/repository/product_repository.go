package repository

import (
	"errors"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint, onlyActive bool) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID uint) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

func preloadVariants(query *gorm.DB, onlyActive bool) *gorm.DB {
	return query.Preload("Variants", func(db *gorm.DB) *gorm.DB {
		if onlyActive {
			db = db.Where("is_active = ?", true)
		}
		return db.Order(defaultSortOrder)
	})
}

// productSortExpr 将排序参数转换为 ORDER BY 子句
func productSortExpr(sort string) string {
	switch sort {
	case constants.ProductSortPriceAsc:
		return "price ASC, id DESC"
	case constants.ProductSortPriceDesc:
		return "price DESC, id DESC"
	case constants.ProductSortName:
		return "name ASC, id ASC"
	case constants.ProductSortNewest:
		return "created_at DESC, id DESC"
	default:
		return "sort_order DESC, created_at DESC, id DESC"
	}
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category").Preload("SubCategory")
	}
	query = preloadVariants(query, filter.OnlyActive)
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	} else {
		query = applyActiveFilter(query, "is_active", filter.IsActive)
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SubCategoryID > 0 {
		query = query.Where("sub_category_id = ?", filter.SubCategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if filter.NewArrival {
		query = query.Where("is_new_arrival = ?", true)
	}
	if filter.BestSeller {
		query = query.Where("is_best_seller = ?", true)
	}
	query = applyKeywordSearch(query, filter.Search, "name", "brand", "slug")

	return countAndFind[models.Product](query, filter.Page, filter.PageSize, productSortExpr(filter.Sort))
}

// GetBySlug 根据 slug 获取商品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	var product models.Product
	query := preloadVariants(r.db.Preload("Category").Preload("SubCategory"), onlyActive).
		Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	query := preloadVariants(r.db.Preload("Category").Preload("SubCategory"), false)
	if err := query.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 批量获取商品（保持数据库顺序，调用方自行按需重排）
func (r *GormProductRepository) ListByIDs(ids []uint, onlyActive bool) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	query := preloadVariants(r.db, onlyActive).Where("id IN ?", ids)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品（规格随商品一并写入）
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Omit("Category", "SubCategory").Create(product).Error
}

// Update 更新商品基础字段，规格由规格仓库单独维护
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Omit("Category", "SubCategory", "Variants").Save(product).Error
}

// Delete 删除商品及其规格
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
