// internal/domain/models/article.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// An article is split across the two stores. ArticleRecord is the relational
// half: it mints the authoritative identifier and carries the title and
// author for cross-entity joins. Article is the document half: it carries
// the content and tags, and references the relational identifier through
// ArticleID.

// ArticleRecord is the relational half of an article.
type ArticleRecord struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"size:255" json:"title"`
	Author uint   `gorm:"index" json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ArticleRecord) TableName() string { return "articles" }

// Article is the document half of an article. ArticleID must reference a
// live ArticleRecord row; it is the identifier exposed to clients.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ArticleID   uint               `bson:"article_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Author      uint               `bson:"author" json:"author"`
	Content     string             `bson:"content" json:"content"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedDate time.Time          `bson:"created_date" json:"created_date"`
	LastUpdated time.Time          `bson:"last_updated" json:"last_updated"`
}
