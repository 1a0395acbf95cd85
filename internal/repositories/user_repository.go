package repositories

import "gbstore/internal/models"

// UserRepository defines the interface for account data access. The account
// table is seeded at startup and never grows at runtime.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
