package handler

import (
	"errors"

	"community-system/internal/service"
	"community-system/pkg/jwt"
	"community-system/pkg/response"
	"community-system/pkg/whatsapp"

	"github.com/gin-gonic/gin"
)

type InviteHandler struct {
	service *service.InviteService
}

func NewInviteHandler(s *service.InviteService) *InviteHandler {
	return &InviteHandler{service: s}
}

// WhatsAppInvite 生成WhatsApp邀请链接
func (h *InviteHandler) WhatsAppInvite(c *gin.Context) {
	userID := jwt.GetUserID(c)

	type req struct {
		Phone string `json:"phone" binding:"required"`
		Lang  string `json:"lang"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lang := r.Lang
	if lang == "" {
		lang = requestLang(c)
	}

	invite, err := h.service.BuildInvite(userID, r.Phone, lang)
	if err != nil {
		if errors.Is(err, whatsapp.ErrInvalidPhone) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "邀请已生成", invite)
}

// ListReferrals 本人发出的推荐记录
func (h *InviteHandler) ListReferrals(c *gin.Context) {
	userID := jwt.GetUserID(c)

	referrals, err := h.service.ListReferrals(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, referrals)
}
