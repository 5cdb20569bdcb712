package service

import (
	"context"
	"errors"
	"strings"

	"Lee_Blog/internal/model"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrTextRequired = errors.New("text required")
	ErrNotAuthor    = errors.New("not the author")
	ErrNoPermission = errors.New("no permission")
)

type PostService struct {
	repo        *mysql.PostRepository
	groupRepo   *mysql.GroupRepository
	userRepo    *mysql.UserRepository
	commentRepo *mysql.CommentRepository
	followRepo  *mysql.FollowRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		repo:        &mysql.PostRepository{DB: db},
		groupRepo:   &mysql.GroupRepository{DB: db},
		userRepo:    &mysql.UserRepository{DB: db},
		commentRepo: &mysql.CommentRepository{DB: db},
		followRepo:  &mysql.FollowRepository{DB: db},
	}
}

// ListAll 主页帖子流
func (s *PostService) ListAll(page string) (pkg.Page[model.Post], error) {
	list, err := s.repo.ListAll()
	if err != nil {
		return pkg.Page[model.Post]{}, err
	}
	return pkg.Paginate(list, page), nil
}

// ListByGroup 分组帖子流，分组不存在时透传 gorm.ErrRecordNotFound
func (s *PostService) ListByGroup(slug, page string) (*model.Group, pkg.Page[model.Post], error) {
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, pkg.Page[model.Post]{}, err
	}
	list, err := s.repo.ListByGroup(group.ID)
	if err != nil {
		return nil, pkg.Page[model.Post]{}, err
	}
	return group, pkg.Paginate(list, page), nil
}

// ListByAuthor 作者主页帖子流
func (s *PostService) ListByAuthor(username, page string) (*model.User, pkg.Page[model.Post], error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, pkg.Page[model.Post]{}, err
	}
	list, err := s.repo.ListByAuthor(author.ID)
	if err != nil {
		return nil, pkg.Page[model.Post]{}, err
	}
	return author, pkg.Paginate(list, page), nil
}

// FeedFor 关注流：先取关注的作者集合，再按作者集合查帖子
func (s *PostService) FeedFor(ctx context.Context, userID uint64, page string) (pkg.Page[model.Post], error) {
	ids, err := s.followRepo.FollowedAuthorIDs(ctx, userID)
	if err != nil {
		return pkg.Page[model.Post]{}, err
	}
	list, err := s.repo.ListByAuthors(ids)
	if err != nil {
		return pkg.Page[model.Post]{}, err
	}
	return pkg.Paginate(list, page), nil
}

type PostDetail struct {
	Post       *model.Post
	Author     *model.User
	PostsCount int64
	Comments   []model.Comment
}

func (s *PostService) Detail(postID uint64) (*PostDetail, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.FindByID(post.AuthorID)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountByAuthor(post.AuthorID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: post, Author: author, PostsCount: count, Comments: comments}, nil
}

func (s *PostService) FindByID(postID uint64) (*model.Post, error) {
	return s.repo.FindByID(postID)
}

func (s *PostService) Author(id uint64) (*model.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *PostService) Create(authorID uint64, text string, groupID *uint64, image string) (*model.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if groupID != nil {
		if _, err := s.groupRepo.FindByID(*groupID); err != nil {
			return nil, err
		}
	}

	post := &model.Post{
		Text:     text,
		AuthorID: authorID,
		GroupID:  groupID,
		Image:    image,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Edit 只有作者本人可以改，作者和创建时间不动
func (s *PostService) Edit(userID, postID uint64, text string, groupID *uint64, image string) (*model.Post, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrNotAuthor
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if groupID != nil {
		if _, err = s.groupRepo.FindByID(*groupID); err != nil {
			return nil, err
		}
	}

	if err = s.repo.Update(post.ID, text, groupID, image); err != nil {
		return nil, err
	}
	return s.repo.FindByID(post.ID)
}

// Delete 作者或管理员可删，评论随帖子一起删
func (s *PostService) Delete(userID uint64, role int, postID uint64) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		// 已经不存在视为幂等成功
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if post.AuthorID != userID && role < 1 {
		return ErrNoPermission
	}
	return s.repo.Delete(post.ID)
}
