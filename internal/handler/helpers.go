package handler

import (
	"net/http"

	"Lee_Blog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func currentRole(c *gin.Context) int {
	v, ok := c.Get(middleware.ContextRoleKey)
	if !ok {
		return 0
	}
	role, _ := v.(int)
	return role
}

// NotFound 统一的 404 页面
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": "page not found"})
}
