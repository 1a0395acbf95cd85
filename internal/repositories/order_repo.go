package repositories

import (
	"gbstore/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted; Count feeds the sequential order identifier.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	Count() (int, error)
}
