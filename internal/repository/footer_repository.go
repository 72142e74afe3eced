package repository

import (
	"errors"

	"github.com/bazaar-next/internal/models"

	"gorm.io/gorm"
)

// FooterRepository 页脚分组与链接数据访问接口
type FooterRepository interface {
	ListSections(filter ContentListFilter) ([]models.FooterSection, int64, error)
	ListActiveSections() ([]models.FooterSection, error)
	GetSection(id uint) (*models.FooterSection, error)
	CreateSection(section *models.FooterSection) error
	UpdateSection(section *models.FooterSection) error
	DeleteSection(id uint) error
	ListLinks(sectionID uint) ([]models.FooterLink, error)
	GetLink(id uint) (*models.FooterLink, error)
	CreateLink(link *models.FooterLink) error
	UpdateLink(link *models.FooterLink) error
	DeleteLink(id uint) error
}

// GormFooterRepository GORM 实现
type GormFooterRepository struct {
	db *gorm.DB
}

// NewFooterRepository 创建页脚仓库
func NewFooterRepository(db *gorm.DB) *GormFooterRepository {
	return &GormFooterRepository{db: db}
}

func preloadFooterLinks(query *gorm.DB) *gorm.DB {
	return query.Preload("Links", func(db *gorm.DB) *gorm.DB {
		return db.Order(defaultSortOrder)
	})
}

// ListSections 页脚分组列表（含链接）
func (r *GormFooterRepository) ListSections(filter ContentListFilter) ([]models.FooterSection, int64, error) {
	query := applyActiveFilter(r.db.Model(&models.FooterSection{}), "is_active", filter.IsActive)
	return countAndFind[models.FooterSection](preloadFooterLinks(query), filter.Page, filter.PageSize, defaultSortOrder)
}

// ListActiveSections 启用的页脚分组（含链接）
func (r *GormFooterRepository) ListActiveSections() ([]models.FooterSection, error) {
	sections := make([]models.FooterSection, 0)
	err := preloadFooterLinks(r.db).
		Where("is_active = ?", true).
		Order(defaultSortOrder).
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// GetSection 获取页脚分组
func (r *GormFooterRepository) GetSection(id uint) (*models.FooterSection, error) {
	var section models.FooterSection
	if err := preloadFooterLinks(r.db).First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

// CreateSection 创建页脚分组
func (r *GormFooterRepository) CreateSection(section *models.FooterSection) error {
	return r.db.Create(section).Error
}

// UpdateSection 更新页脚分组
func (r *GormFooterRepository) UpdateSection(section *models.FooterSection) error {
	return r.db.Omit("Links").Save(section).Error
}

// DeleteSection 删除页脚分组及其链接
func (r *GormFooterRepository) DeleteSection(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", id).Delete(&models.FooterLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FooterSection{}, id).Error
	})
}

// ListLinks 获取分组下的链接
func (r *GormFooterRepository) ListLinks(sectionID uint) ([]models.FooterLink, error) {
	links := make([]models.FooterLink, 0)
	query := r.db.Model(&models.FooterLink{})
	if sectionID > 0 {
		query = query.Where("section_id = ?", sectionID)
	}
	if err := query.Order("section_id ASC, " + defaultSortOrder).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetLink 获取页脚链接
func (r *GormFooterRepository) GetLink(id uint) (*models.FooterLink, error) {
	var link models.FooterLink
	if err := r.db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// CreateLink 创建页脚链接
func (r *GormFooterRepository) CreateLink(link *models.FooterLink) error {
	return r.db.Create(link).Error
}

// UpdateLink 更新页脚链接
func (r *GormFooterRepository) UpdateLink(link *models.FooterLink) error {
	return r.db.Save(link).Error
}

// DeleteLink 删除页脚链接
func (r *GormFooterRepository) DeleteLink(id uint) error {
	return r.db.Delete(&models.FooterLink{}, id).Error
}
