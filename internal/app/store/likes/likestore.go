// internal/app/store/likes/likestore.go
package likestore

import (
	"context"
	"errors"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no like matches the lookup.
	ErrNotFound = errors.New("like not found")
	// ErrAlreadyLiked is returned when the (article, user) pair already has
	// a like. The uniqueness is enforced here, by an existence check before
	// insert, not by a storage constraint.
	ErrAlreadyLiked = errors.New("article already liked by user")
)

// Store provides relational access to likes.
type Store struct {
	db *gorm.DB
}

// New creates a like Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a like after checking the pair is not already present.
func (s *Store) Create(ctx context.Context, articleID, userID uint) (*models.Like, error) {
	liked, err := s.HasLiked(ctx, articleID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, ErrAlreadyLiked
	}

	l := models.Like{ArticleID: articleID, UserID: userID}
	if err := s.db.WithContext(ctx).Create(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// Delete removes a like by its identifier.
func (s *Store) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Like{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByArticleAndUser returns the like for the (article, user) pair.
func (s *Store) GetByArticleAndUser(ctx context.Context, articleID, userID uint) (*models.Like, error) {
	var l models.Like
	err := s.db.WithContext(ctx).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByArticle returns all likes on an article.
func (s *Store) ListByArticle(ctx context.Context, articleID uint) ([]models.Like, error) {
	var likes []models.Like
	err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// ListByUser returns all likes made by a user.
func (s *Store) ListByUser(ctx context.Context, userID uint) ([]models.Like, error) {
	var likes []models.Like
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// HasLiked reports whether the user already liked the article.
func (s *Store) HasLiked(ctx context.Context, articleID, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
