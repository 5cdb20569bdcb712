package handler

import (
	"errors"
	"net/http"

	"Lee_Blog/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Follow 在作者主页点关注。重复关注和关注自己都是静默 no-op。
func (h *FollowHandler) Follow(c *gin.Context) {
	username := c.Param("username")
	author, err := h.svc.AuthorByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "follow failed"})
		return
	}

	userID, _ := currentUserID(c)
	if _, err = h.svc.Follow(c.Request.Context(), userID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "follow failed"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Unfollow 取消关注，原本没关注时一样跳回作者主页
func (h *FollowHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	author, err := h.svc.AuthorByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "unfollow failed"})
		return
	}

	userID, _ := currentUserID(c)
	if _, err = h.svc.Unfollow(c.Request.Context(), userID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "unfollow failed"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username)
}
