package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errBadImage = errors.New("unsupported image type")

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type PostHandler struct {
	svc       *service.PostService
	followSvc *service.FollowService
	cache     pkg.PageCache
	cacheTTL  time.Duration
	mediaDir  string
}

func NewPostHandler(svc *service.PostService, followSvc *service.FollowService, cache pkg.PageCache, cacheTTL time.Duration, mediaDir string) *PostHandler {
	return &PostHandler{
		svc:       svc,
		followSvc: followSvc,
		cache:     cache,
		cacheTTL:  cacheTTL,
		mediaDir:  mediaDir,
	}
}

// Home 主页帖子流。整页缓存，写帖子不主动失效，TTL 内的旧内容是接受的。
func (h *PostHandler) Home(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	key := "feed:index:" + page

	body, err := h.cache.GetOrCompute(c.Request.Context(), key, h.cacheTTL, func() (string, error) {
		pageObj, err := h.svc.ListAll(page)
		if err != nil {
			return "", err
		}
		b, err := json.Marshal(gin.H{
			"text":     "最新更新",
			"page_obj": pageObj,
		})
		return string(b), err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(body))
}

// GroupList 分组帖子流
func (h *PostHandler) GroupList(c *gin.Context) {
	slug := c.Param("slug")
	group, pageObj, err := h.svc.ListByGroup(slug, c.DefaultQuery("page", "1"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group":    group,
		"page_obj": pageObj,
	})
}

// Profile 作者主页。登录用户附带是否已关注该作者。
func (h *PostHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	author, pageObj, err := h.svc.ListByAuthor(username, c.DefaultQuery("page", "1"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}

	following := false
	if uid, ok := currentUserID(c); ok {
		following, _ = h.followSvc.IsFollowing(c.Request.Context(), uid, author.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"author":    author,
		"page_obj":  pageObj,
		"following": following,
	})
}

// Detail 帖子详情：帖子、作者帖子总数、评论列表和空的评论表单
func (h *PostHandler) Detail(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}

	d, err := h.svc.Detail(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "detail failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":        d.Post,
		"author":      d.Author,
		"posts_count": d.PostsCount,
		"comments":    d.Comments,
		"form":        gin.H{"text": ""},
	})
}

// FollowIndex 关注流：我关注的作者们的帖子
func (h *PostHandler) FollowIndex(c *gin.Context) {
	userID, _ := currentUserID(c)
	pageObj, err := h.svc.FeedFor(c.Request.Context(), userID, c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"text":     "关注的作者更新",
		"page_obj": pageObj,
	})
}

// CreateForm GET 返回空表单上下文
func (h *PostHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form": gin.H{"text": "", "group": nil, "image": nil},
	})
}

// Create 发帖。校验失败按表单重展示处理：200 + 字段错误，不落库。
func (h *PostHandler) Create(c *gin.Context) {
	userID, _ := currentUserID(c)

	text := c.PostForm("text")
	groupID, groupErr := parseGroupID(c.PostForm("group"))
	image, imageErr := h.saveImage(c)

	if fieldErrs := formErrors(text, groupErr, imageErr); fieldErrs != nil {
		c.JSON(http.StatusOK, gin.H{
			"form":   gin.H{"text": text, "group": c.PostForm("group")},
			"errors": fieldErrs,
		})
		return
	}

	post, err := h.svc.Create(userID, text, groupID, image)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 表单里选了不存在的分组
			c.JSON(http.StatusOK, gin.H{
				"form":   gin.H{"text": text, "group": c.PostForm("group")},
				"errors": gin.H{"group": "group does not exist"},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
		return
	}

	author, err := h.svc.Author(post.AuthorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

// EditForm GET 编辑表单，非作者直接跳回详情页
func (h *PostHandler) EditForm(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}

	post, err := h.svc.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "edit failed"})
		return
	}

	userID, _ := currentUserID(c)
	if post.AuthorID != userID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":    post,
		"form":    gin.H{"text": post.Text, "group": post.GroupID, "image": post.Image},
		"is_edit": true,
	})
}

// Edit 改帖。非作者不报错，静默跳回详情页，不改任何数据。
// 作者校验放在表单处理之前，非作者连图片都不落盘。
func (h *PostHandler) Edit(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}

	post, err := h.svc.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "edit failed"})
		return
	}

	userID, _ := currentUserID(c)
	if post.AuthorID != userID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		return
	}

	text := c.PostForm("text")
	groupID, groupErr := parseGroupID(c.PostForm("group"))
	image, imageErr := h.saveImage(c)

	if fieldErrs := formErrors(text, groupErr, imageErr); fieldErrs != nil {
		c.JSON(http.StatusOK, gin.H{
			"form":    gin.H{"text": text, "group": c.PostForm("group")},
			"errors":  fieldErrs,
			"is_edit": true,
		})
		return
	}

	_, err = h.svc.Edit(userID, postID, text, groupID, image)
	switch {
	case err == nil, errors.Is(err, service.ErrNotAuthor):
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "edit failed"})
	}
}

func parseGroupID(raw string) (*uint64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, errors.New("invalid group")
	}
	return &id, nil
}

func formErrors(text string, groupErr, imageErr error) gin.H {
	errs := gin.H{}
	if strings.TrimSpace(text) == "" {
		errs["text"] = "this field is required"
	}
	if groupErr != nil {
		errs["group"] = groupErr.Error()
	}
	if imageErr != nil {
		errs["image"] = imageErr.Error()
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// saveImage 保存上传的配图，没传图时返回空路径
func (h *PostHandler) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExts[ext] {
		return "", errBadImage
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.mediaDir, "posts", name)
	if err = c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("posts", name)), nil
}
