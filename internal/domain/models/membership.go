// internal/domain/models/membership.go
package models

import "time"

// AdminMembership marks a user as holding the admin capability. The presence
// of the row is the source of truth, independent of User.Role; authorization
// requires both to agree.
type AdminMembership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (AdminMembership) TableName() string { return "admins" }

// WriterMembership marks a user as holding the writer capability. Same
// presence semantics as AdminMembership, plus an optional author bio.
type WriterMembership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
	Bio       string    `gorm:"size:512" json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (WriterMembership) TableName() string { return "writers" }
