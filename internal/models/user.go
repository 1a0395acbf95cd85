package models

import "gorm.io/gorm"

// Role distinguishes admin accounts from regular customers.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User represents a store account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Role       Role   `json:"role" gorm:"type:varchar(16)"`
	Password   string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	gorm.Model `json:"-"`
}

// SessionUser is the persisted per-session copy of a logged-in user,
// stored without the password hash.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
