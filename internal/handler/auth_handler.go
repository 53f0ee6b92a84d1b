package handler

import (
	"errors"

	"community-system/internal/service"
	"community-system/pkg/jwt"
	"community-system/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register 用户注册
func (h *AuthHandler) Register(c *gin.Context) {
	type req struct {
		Username     string `json:"username" binding:"required"`
		Email        string `json:"email"`
		Phone        string `json:"phone" binding:"required"`
		Password     string `json:"password" binding:"required,min=6"`
		ReferralCode string `json:"referral_code"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, token, err := h.service.Register(r.Username, r.Email, r.Phone, r.Password, r.ReferralCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrInvalidReferralCode):
			response.BadRequest(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.SuccessWithMessage(c, "注册成功", &response.RegisterResponse{
		Profile:     response.FilterProfileInfo(profile),
		AccessToken: token,
	})
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	type req struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, token, err := h.service.Login(r.Identifier, r.Password)
	if err != nil {
		response.Unauthorized(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "登录成功", &response.LoginResponse{
		Profile:     response.FilterProfileInfo(profile),
		AccessToken: token,
	})
}

// GetProfile 获取本人资料（需要JWT认证）
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := jwt.GetUserID(c)

	profile, err := h.service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "用户不存在")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, response.FilterProfileInfo(profile))
}

// Logout 用户登出
// JWT无状态，登出由客户端丢弃令牌完成
func (h *AuthHandler) Logout(c *gin.Context) {
	response.SuccessWithMessage(c, "已登出", nil)
}
