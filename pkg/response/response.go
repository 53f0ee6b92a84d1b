package response

import (
	"net/http"

	"community-system/internal/model"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`            // 状态码：0表示成功，其他表示错误
	Message string      `json:"message"`         // 响应消息
	Data    interface{} `json:"data,omitempty"`  // 响应数据
	Error   string      `json:"error,omitempty"` // 错误详情（仅在开发环境显示）
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带自定义消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// Conflict 409错误（约束冲突，例如重复报名、重复好友请求）
func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}

// ProfileInfo 用户资料（隐藏敏感字段）
type ProfileInfo struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number"`
	Points      int    `json:"points"`
	QRCode      string `json:"qr_code"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// FilterProfileInfo 过滤用户资料，隐藏密码哈希等敏感字段
func FilterProfileInfo(p *model.Profile) *ProfileInfo {
	if p == nil {
		return nil
	}

	email := ""
	if p.Email != nil {
		email = *p.Email
	}

	return &ProfileInfo{
		ID:          p.ID,
		Username:    p.Username,
		Email:       email,
		PhoneNumber: p.PhoneNumber,
		Points:      p.Points,
		QRCode:      p.QRCode,
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// FriendInfo 好友视角的用户资料（不含邮箱等私密字段）
type FriendInfo struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Points      int    `json:"points"`
}

// FilterFriendInfo 过滤好友资料
func FilterFriendInfo(p *model.Profile) *FriendInfo {
	if p == nil {
		return nil
	}

	return &FriendInfo{
		ID:          p.ID,
		Username:    p.Username,
		PhoneNumber: p.PhoneNumber,
		Points:      p.Points,
	}
}

// LoginResponse 登录响应
type LoginResponse struct {
	Profile     *ProfileInfo `json:"profile"`
	AccessToken string       `json:"access_token"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	Profile     *ProfileInfo `json:"profile"`
	AccessToken string       `json:"access_token"`
}
