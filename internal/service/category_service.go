package service

import (
	"strings"

	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// CategoryService 分类业务服务（一级分类 + 子分类）
type CategoryService struct {
	repo    repository.CategoryRepository
	subRepo repository.SubCategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository, subRepo repository.SubCategoryRepository) *CategoryService {
	return &CategoryService{repo: repo, subRepo: subRepo}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	Image       string
	SortOrder   int
	IsActive    bool
}

// SubCategoryInput 创建/更新子分类输入
type SubCategoryInput struct {
	CategoryID uint
	Name       string
	Slug       string
	Image      string
	SortOrder  int
	IsActive   bool
}

// List 后台分类列表
func (s *CategoryService) List(filter repository.CategoryListFilter) ([]models.Category, int64, error) {
	return s.repo.List(filter)
}

// ListActiveTree 前台分类树（仅启用的分类与子分类）
func (s *CategoryService) ListActiveTree() ([]models.Category, error) {
	return s.repo.ListActiveTree()
}

// Get 获取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// GetActiveBySlug 前台按 slug 获取分类及其子分类
func (s *CategoryService) GetActiveBySlug(slug string) (*models.Category, error) {
	category, err := s.repo.GetBySlug(strings.ToLower(strings.TrimSpace(slug)), true)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	slug, err := resolveSlug(input.Slug, name)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountBySlug(slug, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category := models.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		Image:       strings.TrimSpace(input.Image),
		SortOrder:   input.SortOrder,
		IsActive:    input.IsActive,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return &category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	slug, err := resolveSlug(input.Slug, name)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountBySlug(slug, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category.Name = name
	category.Slug = slug
	category.Description = strings.TrimSpace(input.Description)
	category.Image = strings.TrimSpace(input.Image)
	category.SortOrder = input.SortOrder
	category.IsActive = input.IsActive
	category.SubCategories = nil
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return category, nil
}

// Delete 删除分类，存在商品或子分类时拒绝
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	products, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	subs, err := s.repo.CountSubCategories(id)
	if err != nil {
		return err
	}
	if products > 0 || subs > 0 {
		return ErrCategoryInUse
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	invalidatePublicCache()
	return nil
}

// ListSubCategories 后台子分类列表
func (s *CategoryService) ListSubCategories(filter repository.SubCategoryListFilter) ([]models.SubCategory, int64, error) {
	return s.subRepo.List(filter)
}

// GetSubCategory 获取子分类
func (s *CategoryService) GetSubCategory(id uint) (*models.SubCategory, error) {
	sub, err := s.subRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubCategoryNotFound
	}
	return sub, nil
}

// CreateSubCategory 创建子分类
func (s *CategoryService) CreateSubCategory(input SubCategoryInput) (*models.SubCategory, error) {
	sub := &models.SubCategory{}
	if err := s.applySubCategoryInput(sub, 0, input); err != nil {
		return nil, err
	}
	if err := s.subRepo.Create(sub); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return sub, nil
}

// UpdateSubCategory 更新子分类
func (s *CategoryService) UpdateSubCategory(id uint, input SubCategoryInput) (*models.SubCategory, error) {
	sub, err := s.GetSubCategory(id)
	if err != nil {
		return nil, err
	}
	if err := s.applySubCategoryInput(sub, id, input); err != nil {
		return nil, err
	}
	sub.Category = nil
	if err := s.subRepo.Update(sub); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return sub, nil
}

// DeleteSubCategory 删除子分类，存在商品时拒绝
func (s *CategoryService) DeleteSubCategory(id uint) error {
	if _, err := s.GetSubCategory(id); err != nil {
		return err
	}
	count, err := s.subRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSubCategoryInUse
	}
	if err := s.subRepo.Delete(id); err != nil {
		return err
	}
	invalidatePublicCache()
	return nil
}

func (s *CategoryService) applySubCategoryInput(sub *models.SubCategory, excludeID uint, input SubCategoryInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.CategoryID == 0 {
		return ErrInvalidInput
	}
	if _, err := s.Get(input.CategoryID); err != nil {
		return err
	}
	slug, err := resolveSlug(input.Slug, name)
	if err != nil {
		return err
	}
	count, err := s.subRepo.CountBySlug(slug, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}
	sub.CategoryID = input.CategoryID
	sub.Name = name
	sub.Slug = slug
	sub.Image = strings.TrimSpace(input.Image)
	sub.SortOrder = input.SortOrder
	sub.IsActive = input.IsActive
	return nil
}
