// internal/app/store/comments/commentstore.go
package commentstore

import (
	"context"
	"errors"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no comment matches the identifier.
var ErrNotFound = errors.New("comment not found")

// Store provides relational access to comments.
type Store struct {
	db *gorm.DB
}

// New creates a comment Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a comment and returns it with its assigned identifier.
func (s *Store) Create(ctx context.Context, articleID, userID uint, content string) (*models.Comment, error) {
	c := models.Comment{ArticleID: articleID, UserID: userID, Content: content}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID returns a single comment.
func (s *Store) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var c models.Comment
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update replaces a comment's content and returns the updated row.
func (s *Store) Update(ctx context.Context, id uint, content string) (*models.Comment, error) {
	res := s.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a comment.
func (s *Store) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByArticle returns the comments on an article joined with each
// commenter's username.
func (s *Store) ListByArticle(ctx context.Context, articleID uint) ([]models.CommentWithUser, error) {
	var rows []models.CommentWithUser
	err := s.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.created_at, users.username").
		Joins("INNER JOIN users ON comments.user_id = users.id").
		Where("comments.article_id = ?", articleID).
		Order("comments.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByUser returns all comments made by a user.
func (s *Store) ListByUser(ctx context.Context, userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
