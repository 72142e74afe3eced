package service

import (
	"github.com/bazaar-next/internal/repository"
)

// ContentService CMS 通用内容服务（中部横幅、特色卡片、社交链接、商品区块、菜单）
// apply 负责校验输入并写入实体，id 为 0 表示创建
type ContentService[T any, I any] struct {
	repo         repository.ContentRepository[T]
	apply        func(item *T, id uint, input I) error
	beforeDelete func(id uint) error
}

// NewContentService 创建通用内容服务
func NewContentService[T any, I any](repo repository.ContentRepository[T], apply func(item *T, id uint, input I) error) *ContentService[T, I] {
	return &ContentService[T, I]{repo: repo, apply: apply}
}

// WithDeleteGuard 设置删除前置检查
func (s *ContentService[T, I]) WithDeleteGuard(guard func(id uint) error) *ContentService[T, I] {
	s.beforeDelete = guard
	return s
}

// List 后台列表
func (s *ContentService[T, I]) List(filter repository.ContentListFilter) ([]T, int64, error) {
	return s.repo.List(filter)
}

// ListActive 前台启用列表（已排序）
func (s *ContentService[T, I]) ListActive() ([]T, error) {
	return s.repo.ListActive()
}

// Get 获取详情
func (s *ContentService[T, I]) Get(id uint) (*T, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建
func (s *ContentService[T, I]) Create(input I) (*T, error) {
	item := new(T)
	if err := s.apply(item, 0, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return item, nil
}

// Update 更新
func (s *ContentService[T, I]) Update(id uint, input I) (*T, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(item, id, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return item, nil
}

// Delete 删除
func (s *ContentService[T, I]) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if s.beforeDelete != nil {
		if err := s.beforeDelete(id); err != nil {
			return err
		}
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	invalidatePublicCache()
	return nil
}
