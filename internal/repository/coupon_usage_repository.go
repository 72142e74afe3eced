package repository

import (
	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// CouponUsageRow 使用记录列表行，附带订单号（订单已删除时为空）
type CouponUsageRow struct {
	models.CouponUsage
	OrderNumber string `json:"order_number"`
}

// CouponUsageRepository 优惠券使用记录数据访问接口
type CouponUsageRepository interface {
	Create(usage *models.CouponUsage) error
	ListByCoupon(couponID uint, page, pageSize int) ([]CouponUsageRow, int64, error)
	DeleteByOrderID(orderID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCouponUsageRepository
}

// GormCouponUsageRepository GORM 实现
type GormCouponUsageRepository struct {
	db *gorm.DB
}

// NewCouponUsageRepository 创建优惠券使用记录仓库
func NewCouponUsageRepository(db *gorm.DB) *GormCouponUsageRepository {
	return &GormCouponUsageRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCouponUsageRepository) WithTx(tx *gorm.DB) *GormCouponUsageRepository {
	if tx == nil {
		return r
	}
	return &GormCouponUsageRepository{db: tx}
}

// Create 写入一条使用记录（下单事务内调用）
func (r *GormCouponUsageRepository) Create(usage *models.CouponUsage) error {
	return r.db.Create(usage).Error
}

// ListByCoupon 按优惠券倒序分页，关联订单号
func (r *GormCouponUsageRepository) ListByCoupon(couponID uint, page, pageSize int) ([]CouponUsageRow, int64, error) {
	base := r.db.Model(&models.CouponUsage{}).Where("coupon_usages.coupon_id = ?", couponID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := make([]CouponUsageRow, 0)
	if total == 0 {
		return rows, 0, nil
	}
	err := applyPagination(base, page, pageSize).
		Select("coupon_usages.*, orders.order_number AS order_number").
		Joins("LEFT JOIN orders ON orders.id = coupon_usages.order_id").
		Order("coupon_usages.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// DeleteByOrderID 删除订单对应的使用记录，返回删除行数
func (r *GormCouponUsageRepository) DeleteByOrderID(orderID uint) (int64, error) {
	result := r.db.Where("order_id = ?", orderID).Delete(&models.CouponUsage{})
	return result.RowsAffected, result.Error
}
