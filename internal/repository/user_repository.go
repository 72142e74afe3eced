package repository

import (
	"strings"
	"time"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// UserRepository 顾客账号数据访问接口
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(user *models.User) error
	TouchLastLogin(id uint, at time.Time) error
	List(filter UserListFilter) ([]models.User, int64, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建顾客仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByEmail 邮箱忽略大小写匹配
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, nil
	}
	return firstOrNil[models.User](r.db.Where("LOWER(email) = ?", normalized))
}

// GetByID 根据 ID 获取顾客
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	if id == 0 {
		return nil, nil
	}
	return firstOrNil[models.User](r.db, id)
}

// Create 注册顾客
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// TouchLastLogin 只更新最后登录时间，不触碰其他列
func (r *GormUserRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).UpdateColumn("last_login_at", at).Error
}

// List 后台顾客列表，关键字匹配邮箱、姓名、手机号
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	query := applyKeywordSearch(r.db.Model(&models.User{}), filter.Keyword, "email", "name", "phone")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return countAndFind[models.User](query, filter.Page, filter.PageSize, "id DESC")
}
