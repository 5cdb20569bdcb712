package model

import "time"

// LenPostPreview 列表页展示的预览文本长度
const LenPostPreview = 15

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	Text      string    `gorm:"type:text;not null"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_created,priority:1"`
	GroupID   *uint64   `gorm:"index"`
	Image     string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"index:idx_author_created,priority:2,sort:desc"`
	UpdatedAt time.Time
}

// Preview 截取前 LenPostPreview 个字符，用于列表和日志里的短文本
func (p *Post) Preview() string {
	r := []rune(p.Text)
	if len(r) <= LenPostPreview {
		return p.Text
	}
	return string(r[:LenPostPreview])
}
