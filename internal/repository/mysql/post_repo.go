package mysql

import (
	"Lee_Blog/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

// Update 只允许改文本、分组和配图，作者和创建时间不可变
func (r *PostRepository) Update(id uint64, text string, groupID *uint64, image string) error {
	values := map[string]any{
		"text":     text,
		"group_id": groupID,
	}
	if image != "" {
		values["image"] = image
	}
	return r.DB.Model(&model.Post{}).Where("id = ?", id).Updates(values).Error
}

// ListAll 全部帖子，新的在前
func (r *PostRepository) ListAll() ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByGroup(groupID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Where("group_id = ?", groupID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByAuthor(authorID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// ListByAuthors 关注流查询的第二步：按作者集合过滤
func (r *PostRepository) ListByAuthors(authorIDs []uint64) ([]model.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var list []model.Post
	err := r.DB.Where("author_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByAuthor(authorID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

// Delete 帖子和它的评论在同一事务里一起删
func (r *PostRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
