package handler

import (
	"errors"
	"net/http"

	"Lee_Blog/internal/service"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	svc *service.GroupService
}

type GroupCreateReq struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func NewGroupHandler(svc *service.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// Create 建分组，管理员专用
func (h *GroupHandler) Create(c *gin.Context) {
	if currentRole(c) < 1 {
		c.JSON(http.StatusForbidden, gin.H{"msg": "admin only"})
		return
	}

	var req GroupCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	group, err := h.svc.Create(req.Title, req.Slug, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) || errors.Is(err, service.ErrInvalidSlug) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": "create failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          group.ID,
		"title":       group.Title,
		"slug":        group.Slug,
		"description": group.Description,
	})
}

// List 所有分组
func (h *GroupHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
