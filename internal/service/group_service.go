package service

import (
	"errors"
	"regexp"

	"Lee_Blog/internal/model"
	"Lee_Blog/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrTitleRequired = errors.New("title required")
	ErrInvalidSlug   = errors.New("invalid slug")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type GroupService struct {
	repo *mysql.GroupRepository
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{repo: &mysql.GroupRepository{DB: db}}
}

// Create 管理员建分组，slug 建好后不再变
func (s *GroupService) Create(title, slug, description string) (*model.Group, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}

	group := &model.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	if err := s.repo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetBySlug(slug string) (*model.Group, error) {
	return s.repo.FindBySlug(slug)
}

func (s *GroupService) List() ([]model.Group, error) {
	return s.repo.List()
}

// Delete 删除分组，分组下的帖子保留、引用置空
func (s *GroupService) Delete(id uint64) error {
	return s.repo.Delete(id)
}
