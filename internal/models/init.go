package models

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const generatedAdminPasswordBytes = 12

// InitDefaultAdmin 后台账号表为空时创建一个超级管理员；未配置密码时随机生成并打印到日志一次
func InitDefaultAdmin(username, password string) error {
	var existing int64
	if err := DB.Model(&Admin{}).Unscoped().Count(&existing).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if existing > 0 {
		return nil
	}

	if username = strings.TrimSpace(username); username == "" {
		username = "admin"
	}
	generated := password == ""
	if generated {
		raw := make([]byte, generatedAdminPasswordBytes)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("generate admin password: %w", err)
		}
		password = base64.RawURLEncoding.EncodeToString(raw)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if err := DB.Create(&Admin{
		Username:     username,
		DisplayName:  "Administrator",
		PasswordHash: string(hash),
		Role:         constants.RoleSuperAdmin,
	}).Error; err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	if generated {
		logger.Warnw("default_admin_created", "username", username, "generated_password", password)
		return nil
	}
	logger.Infow("default_admin_created", "username", username)
	return nil
}
