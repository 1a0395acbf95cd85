package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gbstore/internal/models"
	"gbstore/internal/repositories"
)

// ErrEmptyCart is returned by CreateOrder when the session's cart holds no
// items. The order collection is left untouched.
var ErrEmptyCart = errors.New("cart is empty")

// EventPublisher publishes order lifecycle events to the message broker.
// The routing key names the event type, the body is a JSON document.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService converts cart snapshots into orders and manages the order
// lifecycle.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cart        *CartService
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in which
// case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, cart *CartService, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cart:        cart,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder materializes an order from the session's cart. Each cart item
// is resolved against the catalog and captured as a denormalized snapshot
// with the price at checkout time; an unresolvable product aborts the whole
// creation. On success the order is appended, the cart is cleared, and an
// order.created event is published. Returns the new order identifier.
func (s *OrderService) CreateOrder(sessionID, customerName, customerPhone, customerAddress string) (string, error) {
	items := s.cart.Items(sessionID)
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return "", fmt.Errorf("product %s not found: %w", item.ProductID, err)
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
			Color:       item.Color,
			Size:        item.Size,
		})
	}

	count, err := s.orderRepo.Count()
	if err != nil {
		return "", fmt.Errorf("failed to count orders: %w", err)
	}

	now := time.Now()
	newOrder := &models.Order{
		ID:              fmt.Sprintf("ORD-%d-%04d", now.Year(), count+1),
		Items:           orderItems,
		Total:           s.cart.Total(sessionID),
		Status:          models.StatusProcessing,
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		CustomerAddress: customerAddress,
		OrderDate:       now,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return "", fmt.Errorf("failed to create order in repository: %w", err)
	}

	if err := s.cart.Clear(sessionID); err != nil {
		log.Printf("Warning: failed to clear cart for session %s after order %s: %v", sessionID, newOrder.ID, err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id": newOrder.ID,
		"status":   newOrder.Status,
		"total":    newOrder.Total,
	})

	return newOrder.ID, nil
}

// UpdateOrderStatus moves an order to a new status. The transition is
// checked against the status table before anything mutates; an unknown
// order or a disallowed transition leaves the collection unchanged.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("order %s cannot move from %s to %s", id, order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})

	return nil
}

// publishEvent sends an order lifecycle event to the broker. Publication is
// best-effort: failures are logged, never surfaced to the caller.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
