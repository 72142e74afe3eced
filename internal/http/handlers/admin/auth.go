package admin

import (
	"net/http"
	"time"

	"github.com/bazaar-next/internal/constants"
	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/models"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	handlershared.CaptchaPayloadRequest
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string        `json:"token"`
	Admin     *models.Admin `json:"admin"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// AdminLogin 管理员登录，token 同时写入 HttpOnly 会话 Cookie
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if h.CaptchaService != nil {
		if err := h.CaptchaService.Verify(constants.CaptchaSceneAdminLogin, req.CaptchaPayloadRequest.ToServicePayload()); err != nil {
			respondMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
			return
		}
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.setSessionCookie(c, token, int(time.Until(expiresAt).Seconds()))
	requestLog(c).Infow("admin_login_success", "admin_id", admin.ID, "username", admin.Username, "client_ip", c.ClientIP())
	response.Success(c, LoginResponse{Token: token, Admin: admin, ExpiresAt: expiresAt})
}

// AdminLogout 登出：递增 token 版本并清除会话 Cookie
func (h *Handler) AdminLogout(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}
	if err := h.AuthService.Logout(id); err != nil {
		respondMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.setSessionCookie(c, "", -1)
	response.Success(c, nil)
}

// GetAdminMe 当前管理员信息与角色权限
func (h *Handler) GetAdminMe(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}
	admin, err := h.AuthService.GetAdmin(id)
	if err != nil {
		respondMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
		return
	}
	data := gin.H{"admin": admin}
	if h.AuthzService != nil {
		policies, err := h.AuthzService.GetRolePolicies(admin.Role)
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		data["policies"] = policies
	}
	response.Success(c, data)
}

// UpdateAdminPassword 修改管理员密码
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		respondMappedError(c, err, authErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	h.setSessionCookie(c, "", -1)
	response.Success(c, nil)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := h.Config != nil && h.Config.Server.Mode == gin.ReleaseMode
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AdminSessionCookie, token, maxAge, constants.AdminSessionPath, "", secure, true)
}
