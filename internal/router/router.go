package router

import (
	"Lee_Blog/internal/config"
	"Lee_Blog/internal/handler"
	"Lee_Blog/internal/middleware"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, cfg *config.Config, cache pkg.PageCache) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	user := handler.NewUserHandler(service.NewUserService(db, smtp))
	post := handler.NewPostHandler(service.NewPostService(db), service.NewFollowService(db), cache, cfg.HomeCacheTTL, cfg.MediaDir)
	group := handler.NewGroupHandler(service.NewGroupService(db))
	comment := handler.NewCommentHandler(service.NewCommentService(db))
	follow := handler.NewFollowHandler(service.NewFollowService(db))

	// 公开页面，带可选登录态（作者主页要展示是否已关注）
	r.GET("/", middleware.AuthOptional(), post.Home)
	r.GET("/group", middleware.AuthOptional(), group.List)
	r.GET("/group/:slug", middleware.AuthOptional(), post.GroupList)
	r.GET("/profile/:username", middleware.AuthOptional(), post.Profile)
	r.GET("/posts/:id", middleware.AuthOptional(), post.Detail)

	// 登录态页面
	authed := r.Group("/")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/create", post.CreateForm)
		authed.POST("/create", post.Create)
		authed.GET("/posts/:id/edit", post.EditForm)
		authed.POST("/posts/:id/edit", post.Edit)
		authed.POST("/posts/:id/comment", comment.Add)
		authed.GET("/follow", post.FollowIndex)
		authed.GET("/profile/:username/follow", follow.Follow)
		authed.GET("/profile/:username/unfollow", follow.Unfollow)
		authed.POST("/group/create", group.Create)
	}

	// 用户相关接口
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", user.Signup)
		authGroup.GET("/login", user.LoginForm)
		authGroup.POST("/login", user.Login)
		authGroup.POST("/refresh", user.TokenRefresh)
		authGroup.POST("/password_reset", user.PasswordReset)
		authGroup.POST("/reset", user.PasswordResetConfirm)
		authGroup.POST("/logout", middleware.AuthRequired(), user.Logout)
		authGroup.POST("/password_change", middleware.AuthRequired(), user.ChangePassword)
	}

	r.NoRoute(handler.NotFound)

	return r
}
