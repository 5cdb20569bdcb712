package mysql

import (
	"Lee_Blog/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func (r *GroupRepository) Create(g *model.Group) error {
	return r.DB.Create(g).Error
}

func (r *GroupRepository) FindByID(id uint64) (*model.Group, error) {
	var group model.Group
	err := r.DB.First(&group, id).Error
	return &group, err
}

func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("slug = ?", slug).First(&group).Error
	return &group, err
}

func (r *GroupRepository) List() ([]model.Group, error) {
	var list []model.Group
	err := r.DB.Order("id DESC").Find(&list).Error
	return list, err
}

// Delete 删除分组不删帖子：同一事务里先把帖子的分组引用置空
func (r *GroupRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).
			Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, id).Error
	})
}
