// internal/domain/models/like.go
package models

import "time"

// Like records that a user liked an article. At most one row per
// (article, user) pair; enforced by an existence check before insert.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"index" json:"article_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string { return "likes" }
