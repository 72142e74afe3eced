package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/bazaar-next/internal/models"
)

// authStateCacheTTL 鉴权快照缓存时长，禁用/登出最多延迟该时长生效
const authStateCacheTTL = 30 * time.Second

// UserAuthState 顾客鉴权快照
type UserAuthState struct {
	UserID       uint   `json:"user_id"`
	Status       string `json:"status"`
	TokenVersion uint64 `json:"token_version"`
	CachedAt     int64  `json:"cached_at"`
}

// AdminAuthState 管理员鉴权快照，Role 供 RBAC 中间件使用
type AdminAuthState struct {
	AdminID      uint   `json:"admin_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	TokenVersion uint64 `json:"token_version"`
	IsDisabled   bool   `json:"is_disabled"`
	CachedAt     int64  `json:"cached_at"`
}

// authStateStore 按账号 ID 存取快照；redis 未启用时读恒不命中、写为空操作
type authStateStore[T any] struct {
	prefix string
}

func (s authStateStore[T]) key(id uint) string {
	return s.prefix + strconv.FormatUint(uint64(id), 10)
}

func (s authStateStore[T]) get(ctx context.Context, id uint) (*T, bool, error) {
	if id == 0 {
		return nil, false, nil
	}
	var state T
	hit, err := GetJSON(ctx, s.key(id), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

func (s authStateStore[T]) set(ctx context.Context, id uint, state *T) error {
	if id == 0 || state == nil {
		return nil
	}
	return SetJSON(ctx, s.key(id), state, authStateCacheTTL)
}

func (s authStateStore[T]) del(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	return Del(ctx, s.key(id))
}

var (
	userStates  = authStateStore[UserAuthState]{prefix: "auth:user:"}
	adminStates = authStateStore[AdminAuthState]{prefix: "auth:admin:"}
)

// BuildUserAuthState 从顾客模型构建鉴权快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:       user.ID,
		Status:       user.Status,
		TokenVersion: user.TokenVersion,
		CachedAt:     time.Now().Unix(),
	}
}

// BuildAdminAuthState 从管理员模型构建鉴权快照
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	return &AdminAuthState{
		AdminID:      admin.ID,
		Username:     admin.Username,
		Role:         admin.Role,
		TokenVersion: admin.TokenVersion,
		IsDisabled:   admin.IsDisabled,
		CachedAt:     time.Now().Unix(),
	}
}

// GetUserAuthState 读取顾客鉴权快照
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	return userStates.get(ctx, userID)
}

// SetUserAuthState 写入顾客鉴权快照
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil {
		return nil
	}
	return userStates.set(ctx, state.UserID, state)
}

// GetAdminAuthState 读取管理员鉴权快照
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool, error) {
	return adminStates.get(ctx, adminID)
}

// SetAdminAuthState 写入管理员鉴权快照
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil {
		return nil
	}
	return adminStates.set(ctx, state.AdminID, state)
}

// DelAdminAuthState 删除管理员鉴权快照（登出、改密、删除账号后调用）
func DelAdminAuthState(ctx context.Context, adminID uint) error {
	return adminStates.del(ctx, adminID)
}
