package handler

import (
	"errors"

	"community-system/internal/service"
	"community-system/pkg/jwt"
	"community-system/pkg/response"

	"github.com/gin-gonic/gin"
)

type HobbyHandler struct {
	service *service.HobbyService
}

func NewHobbyHandler(s *service.HobbyService) *HobbyHandler {
	return &HobbyHandler{service: s}
}

// Catalog 爱好词表
func (h *HobbyHandler) Catalog(c *gin.Context) {
	hobbies, err := h.service.Catalog()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, hobbies)
}

// MyHobbies 本人已选爱好
func (h *HobbyHandler) MyHobbies(c *gin.Context) {
	userID := jwt.GetUserID(c)

	names, err := h.service.MyHobbies(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, names)
}

// Add 添加爱好
func (h *HobbyHandler) Add(c *gin.Context) {
	userID := jwt.GetUserID(c)

	type req struct {
		HobbyName string `json:"hobby_name" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Add(userID, r.HobbyName); err != nil {
		switch {
		case errors.Is(err, service.ErrHobbyExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrHobbyNotFound):
			response.NotFound(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}
	response.SuccessWithMessage(c, "爱好已添加", nil)
}

// Remove 移除爱好
func (h *HobbyHandler) Remove(c *gin.Context) {
	userID := jwt.GetUserID(c)
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "hobby name is required")
		return
	}

	if err := h.service.Remove(userID, name); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.SuccessWithMessage(c, "爱好已移除", nil)
}

// Matches 爱好匹配的邻居
func (h *HobbyHandler) Matches(c *gin.Context) {
	userID := jwt.GetUserID(c)

	matches, err := h.service.Matches(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, matches)
}
