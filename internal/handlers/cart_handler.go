package handlers

import (
	"fmt"
	"log"

	"gbstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	cart     *services.CartService
	products *services.ProductService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *services.CartService, products *services.ProductService) *CartHandler {
	return &CartHandler{
		cart:     cart,
		products: products,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveProduct)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// HandleGetCart returns the cart contents with the derived total and item
// count.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	session := sessionID(c)
	return c.JSON(fiber.Map{
		"items":      h.cart.Items(session),
		"total":      h.cart.Total(session),
		"item_count": h.cart.ItemCount(session),
	})
}

// AddItemRequest is the request body for adding a product variant to the
// cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Color     string `json:"color" validate:"required"`
	Size      string `json:"size"`
}

// HandleAddItem adds a product variant to the cart. Stock and color checks
// live here; the cart service itself never rejects an add.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	product, err := h.products.GetProductByID(req.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", req.ProductID),
		})
	}

	colorKnown := false
	for _, color := range product.Colors {
		if color.Name == req.Color {
			colorKnown = true
			break
		}
	}
	if !colorKnown {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Product %s has no color %q", product.Name, req.Color),
		})
	}

	if req.Quantity > product.Stock {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Requested quantity %d exceeds stock for %s", req.Quantity, product.Name),
		})
	}

	session := sessionID(c)
	if err := h.cart.AddItem(session, product, req.Quantity, req.Color, req.Size); err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items":      h.cart.Items(session),
		"total":      h.cart.Total(session),
		"item_count": h.cart.ItemCount(session),
	})
}

// UpdateQuantityRequest is the request body for changing an item's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// HandleUpdateQuantity sets the quantity on all cart items for a product.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	session := sessionID(c)
	if err := h.cart.UpdateQuantity(session, c.Params("productId"), req.Quantity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"items":      h.cart.Items(session),
		"total":      h.cart.Total(session),
		"item_count": h.cart.ItemCount(session),
	})
}

// HandleRemoveProduct removes every variant of a product from the cart.
func (h *CartHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	session := sessionID(c)
	if err := h.cart.RemoveProduct(session, c.Params("productId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item from cart",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"items":      h.cart.Items(session),
		"total":      h.cart.Total(session),
		"item_count": h.cart.ItemCount(session),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	session := sessionID(c)
	if err := h.cart.Clear(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
