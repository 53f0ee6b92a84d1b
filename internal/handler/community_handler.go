package handler

import (
	"community-system/config"
	"community-system/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	community config.CommunityConfig
}

func NewCommunityHandler(community config.CommunityConfig) *CommunityHandler {
	return &CommunityHandler{community: community}
}

// Info 社区信息（无需认证）
// 民众俱乐部联系电话供紧急情况使用
func (h *CommunityHandler) Info(c *gin.Context) {
	response.Success(c, gin.H{
		"name":            h.community.Name,
		"app_url":         h.community.AppURL,
		"emergency_phone": h.community.EmergencyPhone,
		"referral_bonus":  h.community.ReferralBonus,
	})
}
