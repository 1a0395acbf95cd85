package services

import (
	"encoding/json"
	"fmt"
	"log"

	"gbstore/internal/models"
	"gbstore/internal/repositories"
)

// cartKeyPrefix namespaces cart snapshots inside the session store.
const cartKeyPrefix = "cart:"

// CartService manages the session-scoped cart. Every mutation persists the
// full cart snapshot to the session store; reads go through the stored
// snapshot, so the cart survives across requests and service instances.
type CartService struct {
	productRepo repositories.ProductRepository
	sessions    repositories.SessionStore
}

// NewCartService creates a new CartService.
func NewCartService(productRepo repositories.ProductRepository, sessions repositories.SessionStore) *CartService {
	return &CartService{
		productRepo: productRepo,
		sessions:    sessions,
	}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// load reads the persisted cart snapshot for the session. A missing or
// unparseable snapshot resets to an empty cart; corruption is discarded
// silently apart from a log line.
func (s *CartService) load(sessionID string) []models.CartItem {
	raw, ok, err := s.sessions.Get(cartKey(sessionID))
	if err != nil || !ok {
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("Discarding unparseable cart snapshot for session %s: %v", sessionID, err)
		if delErr := s.sessions.Delete(cartKey(sessionID)); delErr != nil {
			log.Printf("Failed to delete corrupted cart snapshot for session %s: %v", sessionID, delErr)
		}
		return nil
	}
	return items
}

func (s *CartService) save(sessionID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.sessions.Put(cartKey(sessionID), raw); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Items returns the current cart contents for the session.
func (s *CartService) Items(sessionID string) []models.CartItem {
	return s.load(sessionID)
}

// AddItem adds quantity of a product variant to the cart. If an item with
// the same (productID, color, size) key already exists its quantity is
// incremented; otherwise a new item is appended. Stock limits are not
// enforced at this layer.
func (s *CartService) AddItem(sessionID string, product *models.Product, quantity int, color, size string) error {
	items := s.load(sessionID)

	incoming := models.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
	}

	merged := false
	for i := range items {
		if items[i].SameVariant(incoming) {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, incoming)
	}

	return s.save(sessionID, items)
}

// RemoveProduct removes every variant of the given product from the cart.
// Matching is by product ID only, so all color/size variants go together.
func (s *CartService) RemoveProduct(sessionID, productID string) error {
	items := s.load(sessionID)

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	return s.save(sessionID, kept)
}

// UpdateQuantity sets the quantity on every cart item matching productID.
// The value is stored as given; range checks belong to the caller.
func (s *CartService) UpdateQuantity(sessionID, productID string, quantity int) error {
	items := s.load(sessionID)

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}

	return s.save(sessionID, items)
}

// Clear empties the cart.
func (s *CartService) Clear(sessionID string) error {
	return s.save(sessionID, []models.CartItem{})
}

// Total returns the cart total at current catalog prices. Items whose
// product no longer resolves in the catalog contribute zero.
func (s *CartService) Total(sessionID string) float64 {
	var total float64
	for _, item := range s.load(sessionID) {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			continue
		}
		total += product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities across all cart items.
func (s *CartService) ItemCount(sessionID string) int {
	var count int
	for _, item := range s.load(sessionID) {
		count += item.Quantity
	}
	return count
}
