package service

import (
	"context"
	"strings"

	"github.com/bazaar-next/internal/authz"
	"github.com/bazaar-next/internal/cache"
	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"
)

// AdminService 管理员账号管理（仅超级管理员可用）
type AdminService struct {
	adminRepo repository.AdminRepository
}

// NewAdminService 创建管理员账号服务
func NewAdminService(adminRepo repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// CreateAdminInput 创建管理员输入
type CreateAdminInput struct {
	Username    string
	DisplayName string
	Password    string
	Role        string
}

// List 列出全部管理员
func (s *AdminService) List() ([]models.Admin, error) {
	return s.adminRepo.List()
}

// Create 创建管理员
func (s *AdminService) Create(input CreateAdminInput) (*models.Admin, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrInvalidInput
	}
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = constants.RoleOrderManager
	}
	if !authz.IsBuiltinRole(role) {
		return nil, ErrInvalidRole
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	existing, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		Username:     username,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete 删除管理员，不能删除自己，也不能删除最后一个超级管理员
func (s *AdminService) Delete(operatorID, adminID uint) error {
	if operatorID == adminID {
		return ErrCannotDeleteSelf
	}
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if admin.Role == constants.RoleSuperAdmin && !admin.IsDisabled {
		count, err := s.adminRepo.CountByRole(constants.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastSuperAdmin
		}
	}
	if err := s.adminRepo.Delete(adminID); err != nil {
		return err
	}
	_ = cache.DelAdminAuthState(context.Background(), adminID)
	return nil
}
