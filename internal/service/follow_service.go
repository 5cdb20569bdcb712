package service

import (
	"context"
	"errors"

	"Lee_Blog/internal/model"
	"Lee_Blog/internal/repository/mysql"

	"gorm.io/gorm"
)

var ErrInvalidUserID = errors.New("invalid user id")

type FollowService struct {
	repo     *mysql.FollowRepository
	userRepo *mysql.UserRepository
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		repo:     &mysql.FollowRepository{DB: db},
		userRepo: &mysql.UserRepository{DB: db},
	}
}

// AuthorByUsername 关注/取关入口按用户名定位作者
func (s *FollowService) AuthorByUsername(username string) (*model.User, error) {
	return s.userRepo.FindByUsername(username)
}

// Follow 关注作者。自己关注自己静默忽略，重复关注是无害的 no-op。
func (s *FollowService) Follow(ctx context.Context, userID, authorID uint64) (bool, error) {
	if userID == 0 || authorID == 0 {
		return false, ErrInvalidUserID
	}
	if userID == authorID {
		return false, nil
	}
	return s.repo.Follow(ctx, userID, authorID)
}

// Unfollow 取消关注，原本没关注时是 no-op
func (s *FollowService) Unfollow(ctx context.Context, userID, authorID uint64) (bool, error) {
	if userID == 0 || authorID == 0 {
		return false, ErrInvalidUserID
	}
	if userID == authorID {
		return false, nil
	}
	return s.repo.Unfollow(ctx, userID, authorID)
}

func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	if userID == 0 || authorID == 0 {
		return false, nil
	}
	return s.repo.IsFollowing(ctx, userID, authorID)
}
