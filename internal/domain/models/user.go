// internal/domain/models/user.go
package models

import "time"

// Role values stored on the User row. Holding a role is necessary but not
// sufficient for the writer/admin capabilities; the matching membership row
// must exist as well (see the admins/writers stores).
const (
	RoleUser   = "user"
	RoleWriter = "writer"
	RoleAdmin  = "admin"
)

// ValidRole reports whether s is one of the known role values.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleWriter || s == RoleAdmin
}

// User is the relational identity record. The password column holds a bcrypt
// hash and is never serialized to clients.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:64;uniqueIndex" json:"username"`
	Email    string `gorm:"size:191" json:"email"`
	Password string `gorm:"size:191" json:"-"`
	Role     string `gorm:"size:16;default:user" json:"role"` // user | writer | admin

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
