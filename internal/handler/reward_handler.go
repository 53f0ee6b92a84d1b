package handler

import (
	"errors"

	"community-system/internal/service"
	"community-system/pkg/jwt"
	"community-system/pkg/response"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	service *service.RewardService
}

func NewRewardHandler(s *service.RewardService) *RewardHandler {
	return &RewardHandler{service: s}
}

// List 可兑换奖励列表
func (h *RewardHandler) List(c *gin.Context) {
	views, err := h.service.ListAvailable(requestLang(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, views)
}

// Redeem 兑换奖励
func (h *RewardHandler) Redeem(c *gin.Context) {
	userID := jwt.GetUserID(c)
	rewardID, ok := parseIDParam(c, "reward_id")
	if !ok {
		response.BadRequest(c, "invalid reward id")
		return
	}

	redemption, balance, err := h.service.Redeem(userID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRewardNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrRewardUnavailable):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrInsufficientPoints):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.SuccessWithMessage(c, "兑换成功", gin.H{
		"id":           redemption.ID,
		"reward_id":    redemption.RewardID,
		"points_spent": redemption.PointsSpent,
		"points":       balance,
	})
}

// ListRedemptions 个人兑换历史
func (h *RewardHandler) ListRedemptions(c *gin.Context) {
	userID := jwt.GetUserID(c)

	views, err := h.service.ListRedemptions(userID, requestLang(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, views)
}
