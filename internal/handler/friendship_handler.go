package handler

import (
	"errors"

	"community-system/internal/service"
	"community-system/pkg/jwt"
	"community-system/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FriendshipHandler struct {
	service *service.FriendshipService
}

func NewFriendshipHandler(s *service.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{service: s}
}

// Search 搜索居民
func (h *FriendshipHandler) Search(c *gin.Context) {
	userID := jwt.GetUserID(c)
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "query parameter q is required")
		return
	}

	profiles, err := h.service.Search(userID, query)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	infos := make([]*response.FriendInfo, 0, len(profiles))
	for _, p := range profiles {
		infos = append(infos, response.FilterFriendInfo(p))
	}
	response.Success(c, infos)
}

// SendRequest 发送好友请求
func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	userID := jwt.GetUserID(c)

	type req struct {
		FriendID uint `json:"friend_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.service.SendRequest(userID, r.FriendID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFriend):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrRequestExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "用户不存在")
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.SuccessWithMessage(c, "好友请求已发送", gin.H{"id": f.ID})
}

// Accept 接受好友请求
func (h *FriendshipHandler) Accept(c *gin.Context) {
	userID := jwt.GetUserID(c)
	requestID, ok := parseIDParam(c, "request_id")
	if !ok {
		response.BadRequest(c, "invalid request id")
		return
	}

	if err := h.service.Accept(userID, requestID); err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrNotAddressee):
			response.Forbidden(c, err.Error())
		case errors.Is(err, service.ErrRequestNotPending):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.SuccessWithMessage(c, "已接受好友请求", nil)
}

// Decline 拒绝好友请求
func (h *FriendshipHandler) Decline(c *gin.Context) {
	userID := jwt.GetUserID(c)
	requestID, ok := parseIDParam(c, "request_id")
	if !ok {
		response.BadRequest(c, "invalid request id")
		return
	}

	if err := h.service.Decline(userID, requestID); err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrNotAddressee):
			response.Forbidden(c, err.Error())
		case errors.Is(err, service.ErrRequestNotPending):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.SuccessWithMessage(c, "已拒绝好友请求", nil)
}

// ListFriends 好友列表
func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	userID := jwt.GetUserID(c)

	friends, err := h.service.ListFriends(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, friends)
}

// ListPending 待处理的好友请求
func (h *FriendshipHandler) ListPending(c *gin.Context) {
	userID := jwt.GetUserID(c)

	requests, err := h.service.ListPending(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, requests)
}
