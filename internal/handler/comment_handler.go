package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"Lee_Blog/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Add 评论帖子。空评论不落库，但一样跳回详情页。
func (h *CommentHandler) Add(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}

	userID, _ := currentUserID(c)
	_, err = h.svc.Add(userID, postID, c.PostForm("text"))
	switch {
	case err == nil, errors.Is(err, service.ErrTextRequired):
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "comment failed"})
	}
}
