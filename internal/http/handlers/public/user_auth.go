package public

import (
	"time"

	handlershared "github.com/bazaar-next/internal/http/handlers/shared"
	"github.com/bazaar-next/internal/http/response"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 顾客注册请求
type UserRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"max=120"`
	Phone    string `json:"phone" binding:"omitempty,bdphone"`
}

// UserLoginRequest 顾客登录请求
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// userTokenResponse 登录/注册返回
type userTokenResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

var userAuthErrorRules = handlershared.ConcatMappedErrors(handlershared.AuthErrorRules, handlershared.CommonErrorRules)

// UserRegister 顾客注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	user, token, expiresAt, err := h.UserAuthService.Register(service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		respondMappedError(c, err, userAuthErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Created(c, userTokenResponse{User: user, Token: token, ExpiresAt: expiresAt})
}

// UserLogin 顾客登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondMappedError(c, err, userAuthErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, userTokenResponse{User: user, Token: token, ExpiresAt: expiresAt})
}

// GetCurrentUser 当前顾客信息
func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetUserByID(userID)
	if err != nil {
		respondMappedError(c, err, userAuthErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, user)
}
