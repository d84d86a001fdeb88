// internal/domain/models/comment.go
package models

import "time"

// Comment on an article. ArticleID references the relational article
// identifier; UserID references the commenting user.
type Comment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ArticleID uint   `gorm:"index" json:"article_id"`
	UserID    uint   `gorm:"index" json:"user_id"`
	Content   string `gorm:"size:2048" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

// CommentWithUser is a comment joined with the commenting user's username,
// used by the per-article listing.
type CommentWithUser struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}
