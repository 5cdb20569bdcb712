package model

import "time"

// Follow 关注关系：UserID 关注 AuthorID，(user_id, author_id) 唯一
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_author,priority:1"`
	AuthorID  uint64 `gorm:"not null;index;uniqueIndex:uk_user_author,priority:2"`
	CreatedAt time.Time
}

func (Follow) TableName() string { return "follow" }

// FollowOutbox 关注事件出站表，后台投递器异步发送
type FollowOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // follow / unfollow
	UserID    uint64 `gorm:"not null"`
	AuthorID  uint64 `gorm:"not null"`
	Payload   string `gorm:"type:text;not null"`
	Status    int8   `gorm:"not null;default:0"` // 0=pending 1=sent 2=failed
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FollowOutbox) TableName() string { return "follow_outbox" }
