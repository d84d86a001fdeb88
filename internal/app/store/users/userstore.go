// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost is deliberately above the library default; password hashing is
// an offline-attack defense, not a hot path.
const bcryptCost = 12

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username is already taken.
	ErrDuplicateUser = errors.New("username already taken")
	// ErrBadCredentials is returned by Authenticate for an unknown username
	// or a wrong password. Callers must not distinguish the two.
	ErrBadCredentials = errors.New("invalid username or password")
)

// Store provides relational access to user rows.
type Store struct {
	db *gorm.DB
}

// New creates a user Store over the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new user with a bcrypt-hashed password and the default
// role. Returns ErrDuplicateUser if the username is taken.
func (s *Store) Create(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return &u, nil
}

// Authenticate verifies a (username, password) pair against the stored
// bcrypt hash and returns the matching user.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// GetByID returns the user with the given identifier.
func (s *Store) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByUsername returns the user with the given username.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateEmail changes a user's email address.
func (s *Store) UpdateEmail(ctx context.Context, id uint, email string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("email", email)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRole changes a user's role column. Membership rows are synchronized
// by the caller; the role column alone never grants a capability.
func (s *Store) UpdateRole(ctx context.Context, id uint, role string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user row.
func (s *Store) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
