package repository

import (
	"errors"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// ReviewSummary 商品评价汇总
type ReviewSummary struct {
	Count         int64   `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

// ReviewRepository 评价数据访问接口
type ReviewRepository interface {
	List(filter ReviewListFilter) ([]models.Review, int64, error)
	GetByID(id uint) (*models.Review, error)
	Create(review *models.Review) error
	SetApproved(id uint, approved bool) error
	Delete(id uint) error
	SummaryByProduct(productID uint) (ReviewSummary, error)
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// List 评价列表
func (r *GormReviewRepository) List(filter ReviewListFilter) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{})
	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	} else {
		query = query.Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "slug")
		})
	}
	query = applyActiveFilter(query, "is_approved", filter.IsApproved)
	if filter.Rating > 0 {
		query = query.Where("rating = ?", filter.Rating)
	}
	return countAndFind[models.Review](query, filter.Page, filter.PageSize, "created_at DESC, id DESC")
}

// GetByID 根据 ID 获取评价
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Create 创建评价
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Omit("Product").Create(review).Error
}

// SetApproved 设置审核状态
func (r *GormReviewRepository) SetApproved(id uint, approved bool) error {
	return r.db.Model(&models.Review{}).Where("id = ?", id).Update("is_approved", approved).Error
}

// Delete 删除评价
func (r *GormReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

// SummaryByProduct 已审核评价的数量与平均分
func (r *GormReviewRepository) SummaryByProduct(productID uint) (ReviewSummary, error) {
	var row struct {
		Count   int64
		Average *float64
	}
	err := r.db.Model(&models.Review{}).
		Select("COUNT(*) AS count, AVG(rating) AS average").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Scan(&row).Error
	if err != nil {
		return ReviewSummary{}, err
	}
	summary := ReviewSummary{Count: row.Count}
	if row.Average != nil {
		summary.AverageRating = *row.Average
	}
	return summary, nil
}
