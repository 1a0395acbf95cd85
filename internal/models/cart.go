package models

// CartItem is a selected product variant awaiting checkout. Items are unique
// per (ProductID, Color, Size) within a cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size,omitempty"`
}

// SameVariant reports whether other refers to the same product variant.
func (i CartItem) SameVariant(other CartItem) bool {
	return i.ProductID == other.ProductID && i.Color == other.Color && i.Size == other.Size
}
