package service

import (
	"strings"

	"Lee_Blog/internal/model"
	"Lee_Blog/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	repo     *mysql.CommentRepository
	postRepo *mysql.PostRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		repo:     &mysql.CommentRepository{DB: db},
		postRepo: &mysql.PostRepository{DB: db},
	}
}

// Add 给帖子加评论，空文本不落库
func (s *CommentService) Add(userID, postID uint64, text string) (*model.Comment, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: userID,
		Text:     text,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByPost(postID uint64) ([]model.Comment, error) {
	return s.repo.ListByPost(postID)
}
