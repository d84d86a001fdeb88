// internal/app/store/writers/writerstore.go
package writerstore

import (
	"context"
	"errors"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"gorm.io/gorm"
)

// Store provides relational access to writer membership rows. Same presence
// semantics as the admins store, plus an optional author bio on grant.
type Store struct {
	db *gorm.DB
}

// New creates a writer membership Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Exists reports whether the user holds a writer membership row.
func (s *Store) Exists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.WriterMembership{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Grant creates the membership row with the given bio. Granting an existing
// membership is a no-op; the stored bio is left untouched.
func (s *Store) Grant(ctx context.Context, userID uint, bio string) error {
	m := models.WriterMembership{UserID: userID, Bio: bio}
	err := s.db.WithContext(ctx).Create(&m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// Revoke deletes the membership row if present.
func (s *Store) Revoke(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.WriterMembership{}).Error
}
