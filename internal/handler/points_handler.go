package handler

import (
	"strconv"

	"community-system/internal/service"
	"community-system/pkg/jwt"
	"community-system/pkg/response"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	service *service.PointsService
}

func NewPointsHandler(s *service.PointsService) *PointsHandler {
	return &PointsHandler{service: s}
}

// Balance 积分余额
func (h *PointsHandler) Balance(c *gin.Context) {
	userID := jwt.GetUserID(c)

	points, err := h.service.Balance(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"points": points})
}

// History 积分流水
func (h *PointsHandler) History(c *gin.Context) {
	userID := jwt.GetUserID(c)

	entries, err := h.service.History(userID, requestLang(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, entries)
}

// Leaderboard 社区积分排行
func (h *PointsHandler) Leaderboard(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	items, err := h.service.Leaderboard(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, items)
}
