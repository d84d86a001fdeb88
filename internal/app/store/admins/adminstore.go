// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"errors"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"gorm.io/gorm"
)

// Store provides relational access to admin membership rows. The presence
// of a row is the authoritative signal that a user holds the admin
// capability.
type Store struct {
	db *gorm.DB
}

// New creates an admin membership Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Exists reports whether the user holds an admin membership row.
func (s *Store) Exists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.AdminMembership{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Grant creates the membership row. Granting an existing membership is a
// no-op.
func (s *Store) Grant(ctx context.Context, userID uint) error {
	m := models.AdminMembership{UserID: userID}
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
		Delete(&models.AdminMembership{}).Error
}
