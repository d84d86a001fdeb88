package testutil

import (
	"testing"
	"time"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Fixtures provides helper methods for creating relational test data.
type Fixtures struct {
	db *gorm.DB
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *gorm.DB {
	return f.db
}

// CreateUser inserts a user with the given role. The password is hashed
// with the minimum bcrypt cost to keep tests fast; Authenticate still
// verifies it normally.
func (f *Fixtures) CreateUser(username, email, password, role string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := f.db.Create(&user).Error; err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateWriter inserts a user with the writer role and its membership row.
func (f *Fixtures) CreateWriter(username, email, password, bio string) models.User {
	f.t.Helper()

	user := f.CreateUser(username, email, password, models.RoleWriter)
	membership := models.WriterMembership{
		UserID:    user.ID,
		Bio:       bio,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.db.Create(&membership).Error; err != nil {
		f.t.Fatalf("failed to create writer membership: %v", err)
	}
	return user
}

// CreateAdmin inserts a user with the admin role and its membership row.
func (f *Fixtures) CreateAdmin(username, email, password string) models.User {
	f.t.Helper()

	user := f.CreateUser(username, email, password, models.RoleAdmin)
	membership := models.AdminMembership{
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.db.Create(&membership).Error; err != nil {
		f.t.Fatalf("failed to create admin membership: %v", err)
	}
	return user
}

// CreateArticleRecord inserts the relational half of an article.
func (f *Fixtures) CreateArticleRecord(title string, authorID uint) models.ArticleRecord {
	f.t.Helper()

	rec := models.ArticleRecord{Title: title, Author: authorID}
	if err := f.db.Create(&rec).Error; err != nil {
		f.t.Fatalf("failed to create test article record: %v", err)
	}
	return rec
}

// CreateComment inserts a comment on the given article.
func (f *Fixtures) CreateComment(articleID, userID uint, content string) models.Comment {
	f.t.Helper()

	comment := models.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.db.Create(&comment).Error; err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	return comment
}

// CreateLike inserts a like linking a user to an article.
func (f *Fixtures) CreateLike(articleID, userID uint) models.Like {
	f.t.Helper()

	like := models.Like{
		ArticleID: articleID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.db.Create(&like).Error; err != nil {
		f.t.Fatalf("failed to create test like: %v", err)
	}
	return like
}
