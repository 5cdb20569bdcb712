package model

import "time"

// Comment 帖子评论，创建后不可修改，随帖子一起删除
type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index"`
	AuthorID  uint64 `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
