package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "role"
)

// AuthRequired 登录态校验。没有有效登录态时跳转登录页并带上回跳地址。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseSession(c)
		if !ok {
			redirectLogin(c)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// AuthOptional 可选登录态。带了有效 token 就注入 user_id，否则按匿名继续。
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseSession(c); ok {
			c.Set(ContextUserIDKey, claims.UserID)
			c.Set(ContextRoleKey, claims.Role)
		}
		c.Next()
	}
}

func parseSession(c *gin.Context) (*pkg.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	tokenStr := parts[1]

	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return nil, false
	}

	// redis 校验是否仍是该用户当前的 token（单会话）
	sessions := &redis.SessionRepository{}
	originToken, err := sessions.GetUserToken(claims.UserID)
	if err != nil || originToken != tokenStr {
		return nil, false
	}

	// 校验通过后顺延过期时间
	_ = sessions.ExtendUserToken(claims.UserID)
	return claims, true
}

func redirectLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/auth/login?next="+next)
	c.Abort()
}
