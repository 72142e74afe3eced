package repository

import (
	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// MenuItemRepository 导航菜单数据访问接口
type MenuItemRepository interface {
	ContentRepository[models.MenuItem]
	ListAll() ([]models.MenuItem, error)
	CountChildren(parentID uint) (int64, error)
}

// GormMenuItemRepository GORM 实现
type GormMenuItemRepository struct {
	*GormContentRepository[models.MenuItem]
	db *gorm.DB
}

// NewMenuItemRepository 创建菜单仓库
func NewMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		GormContentRepository: NewContentRepository[models.MenuItem](db),
		db:                    db,
	}
}

// ListAll 全部菜单项（后台组装树使用）
func (r *GormMenuItemRepository) ListAll() ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	if err := r.db.Order(defaultSortOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountChildren 统计子菜单数量
func (r *GormMenuItemRepository) CountChildren(parentID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.MenuItem{}).Where("parent_id = ?", parentID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
