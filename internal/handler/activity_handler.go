package handler

import (
	"errors"

	"community-system/internal/service"
	"community-system/pkg/jwt"
	"community-system/pkg/response"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	service *service.ActivityService
}

func NewActivityHandler(s *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: s}
}

// List 活动列表
func (h *ActivityHandler) List(c *gin.Context) {
	userID := jwt.GetUserID(c)

	views, err := h.service.List(userID, requestLang(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, views)
}

// Join 报名活动
func (h *ActivityHandler) Join(c *gin.Context) {
	userID := jwt.GetUserID(c)
	activityID, ok := parseIDParam(c, "activity_id")
	if !ok {
		response.BadRequest(c, "invalid activity id")
		return
	}

	participation, err := h.service.Join(userID, activityID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrAlreadyJoined):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrActivityFull):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.SuccessWithMessage(c, "报名成功", gin.H{
		"activity_id":   participation.ActivityID,
		"points_earned": participation.PointsEarned,
	})
}

// MyActivities 个人参与历史
func (h *ActivityHandler) MyActivities(c *gin.Context) {
	userID := jwt.GetUserID(c)

	views, err := h.service.MyActivities(userID, requestLang(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, views)
}

// Rate 活动评分
func (h *ActivityHandler) Rate(c *gin.Context) {
	userID := jwt.GetUserID(c)
	activityID, ok := parseIDParam(c, "activity_id")
	if !ok {
		response.BadRequest(c, "invalid activity id")
		return
	}

	type req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rating, err := h.service.Rate(userID, activityID, r.Rating, r.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrActivityNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrNotParticipant):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.SuccessWithMessage(c, "评分成功", gin.H{"id": rating.ID})
}

// ListRatings 活动评分列表
func (h *ActivityHandler) ListRatings(c *gin.Context) {
	activityID, ok := parseIDParam(c, "activity_id")
	if !ok {
		response.BadRequest(c, "invalid activity id")
		return
	}

	ratings, err := h.service.ListRatings(activityID)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, ratings)
}

// AddMemory 记录活动回忆
func (h *ActivityHandler) AddMemory(c *gin.Context) {
	userID := jwt.GetUserID(c)
	activityID, ok := parseIDParam(c, "activity_id")
	if !ok {
		response.BadRequest(c, "invalid activity id")
		return
	}

	type req struct {
		MemoryText string `json:"memory_text" binding:"required"`
		PhotoURL   string `json:"photo_url"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	memory, err := h.service.AddMemory(userID, activityID, r.MemoryText, r.PhotoURL)
	if err != nil {
		if errors.Is(err, service.ErrNotParticipant) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "回忆已保存", gin.H{"id": memory.ID})
}
