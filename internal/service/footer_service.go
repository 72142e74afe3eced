package service

import (
	"strings"

	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// FooterService 页脚链接分组服务
type FooterService struct {
	repo repository.FooterRepository
}

// NewFooterService 创建页脚服务
func NewFooterService(repo repository.FooterRepository) *FooterService {
	return &FooterService{repo: repo}
}

// FooterSectionInput 页脚分组输入
type FooterSectionInput struct {
	Title     string
	IsActive  bool
	SortOrder int
}

// FooterLinkInput 页脚链接输入
type FooterLinkInput struct {
	SectionID uint
	Label     string
	URL       string
	SortOrder int
}

// ListSections 后台分组列表（含链接）
func (s *FooterService) ListSections(filter repository.ContentListFilter) ([]models.FooterSection, int64, error) {
	return s.repo.ListSections(filter)
}

// ListActiveSections 前台启用分组（含链接）
func (s *FooterService) ListActiveSections() ([]models.FooterSection, error) {
	return s.repo.ListActiveSections()
}

// GetSection 获取分组
func (s *FooterService) GetSection(id uint) (*models.FooterSection, error) {
	section, err := s.repo.GetSection(id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrNotFound
	}
	return section, nil
}

// CreateSection 创建分组
func (s *FooterService) CreateSection(input FooterSectionInput) (*models.FooterSection, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	section := &models.FooterSection{Title: title, IsActive: input.IsActive, SortOrder: input.SortOrder}
	if err := s.repo.CreateSection(section); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return section, nil
}

// UpdateSection 更新分组
func (s *FooterService) UpdateSection(id uint, input FooterSectionInput) (*models.FooterSection, error) {
	section, err := s.GetSection(id)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	section.Title = title
	section.IsActive = input.IsActive
	section.SortOrder = input.SortOrder
	section.Links = nil
	if err := s.repo.UpdateSection(section); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return s.GetSection(id)
}

// DeleteSection 删除分组及其链接
func (s *FooterService) DeleteSection(id uint) error {
	if _, err := s.GetSection(id); err != nil {
		return err
	}
	if err := s.repo.DeleteSection(id); err != nil {
		return err
	}
	invalidatePublicCache()
	return nil
}

// ListLinks 分组下的链接，sectionID 为 0 时返回全部
func (s *FooterService) ListLinks(sectionID uint) ([]models.FooterLink, error) {
	return s.repo.ListLinks(sectionID)
}

// GetLink 获取链接
func (s *FooterService) GetLink(id uint) (*models.FooterLink, error) {
	link, err := s.repo.GetLink(id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrNotFound
	}
	return link, nil
}

// CreateLink 创建链接
func (s *FooterService) CreateLink(input FooterLinkInput) (*models.FooterLink, error) {
	link := &models.FooterLink{}
	if err := s.applyLinkInput(link, input); err != nil {
		return nil, err
	}
	if err := s.repo.CreateLink(link); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return link, nil
}

// UpdateLink 更新链接
func (s *FooterService) UpdateLink(id uint, input FooterLinkInput) (*models.FooterLink, error) {
	link, err := s.GetLink(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyLinkInput(link, input); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateLink(link); err != nil {
		return nil, err
	}
	invalidatePublicCache()
	return link, nil
}

// DeleteLink 删除链接
func (s *FooterService) DeleteLink(id uint) error {
	if _, err := s.GetLink(id); err != nil {
		return err
	}
	if err := s.repo.DeleteLink(id); err != nil {
		return err
	}
	invalidatePublicCache()
	return nil
}

func (s *FooterService) applyLinkInput(link *models.FooterLink, input FooterLinkInput) error {
	label := strings.TrimSpace(input.Label)
	url := strings.TrimSpace(input.URL)
	if label == "" || url == "" || input.SectionID == 0 {
		return ErrInvalidInput
	}
	if _, err := s.GetSection(input.SectionID); err != nil {
		return err
	}
	link.SectionID = input.SectionID
	link.Label = label
	link.URL = url
	link.SortOrder = input.SortOrder
	return nil
}
