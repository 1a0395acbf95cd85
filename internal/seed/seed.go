// Package seed holds the demo storefront data loaded at startup: the fixed
// catalog, a few historical orders, and the two demo accounts.
package seed

import (
	"fmt"
	"log"
	"time"

	"gbstore/internal/models"
	"gbstore/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// Products returns the demo catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Nike Air Jordan 1 Retro High",
			Price:       189.99,
			Description: "The Air Jordan 1 Retro High offers a clean, classic look with premium materials and Air-Sole cushioning for lasting comfort and style.",
			Category:    models.CategoryShoes,
			Images: []string{
				"/images/products/nike-air-jordan-1-blue.jpg",
				"/images/products/nike-air-jordan-1-blue-side.jpg",
				"/images/products/nike-air-jordan-1-blue-back.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "Blue", Code: "#1E40AF"},
				{Name: "Red", Code: "#DC2626"},
				{Name: "Black", Code: "#1F2937"},
			},
			Sizes:    []string{"7", "8", "9", "10", "11", "12"},
			Stock:    45,
			Featured: true,
		},
		{
			ID:          "2",
			Name:        "Adidas Samba Classic",
			Price:       129.99,
			Description: "The Adidas Samba is a classic design featuring a leather upper, suede toe overlay, and gum rubber outsole.",
			Category:    models.CategoryShoes,
			Images: []string{
				"/images/products/adidas-samba.jpg",
				"/images/products/adidas-samba-side.jpg",
				"/images/products/adidas-samba-back.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "White", Code: "#FFFFFF"},
				{Name: "Black", Code: "#1F2937"},
				{Name: "Brown", Code: "#7C2D12"},
			},
			Sizes:    []string{"7", "8", "9", "10", "11", "12"},
			Stock:    32,
			Featured: true,
		},
		{
			ID:          "3",
			Name:        "Puma Unisex Sneakers",
			Price:       119.99,
			Description: "Versatile Puma sneakers designed for both style and comfort, perfect for everyday wear.",
			Category:    models.CategoryShoes,
			Images: []string{
				"/images/products/puma-unisex.jpg",
				"/images/products/puma-unisex-side.jpg",
				"/images/products/puma-unisex-back.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "White", Code: "#FFFFFF"},
				{Name: "Brown", Code: "#7C2D12"},
				{Name: "Green", Code: "#166534"},
			},
			Sizes:    []string{"7", "8", "9", "10", "11", "12"},
			Stock:    25,
			Featured: true,
		},
		{
			ID:          "4",
			Name:        "Retro Chunky Sole Sneakers",
			Price:       149.99,
			Description: "Trendy chunky sole sneakers with a retro 90s-inspired design, offering both style and comfort.",
			Category:    models.CategoryShoes,
			Images: []string{
				"/images/products/retro-sneakers.jpg",
				"/images/products/retro-sneakers-side.jpg",
				"/images/products/retro-sneakers-back.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "White", Code: "#FFFFFF"},
				{Name: "Black", Code: "#1F2937"},
				{Name: "Red", Code: "#DC2626"},
				{Name: "Blue", Code: "#1E40AF"},
			},
			Sizes:    []string{"7", "8", "9", "10", "11"},
			Stock:    18,
			Featured: true,
		},
		{
			ID:          "5",
			Name:        "Converse Chuck Taylor High Top",
			Price:       79.99,
			Description: "The iconic Chuck Taylor All Star high top sneaker with classic canvas upper and diamond pattern outsole.",
			Category:    models.CategoryShoes,
			Images: []string{
				"/images/products/converse-high-top.jpg",
				"/images/products/converse-high-top-side.jpg",
				"/images/products/converse-high-top-back.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "Brown", Code: "#7C2D12"},
				{Name: "Black", Code: "#1F2937"},
				{Name: "Red", Code: "#DC2626"},
			},
			Sizes: []string{"6", "7", "8", "9", "10", "11", "12"},
			Stock: 50,
		},
		{
			ID:          "6",
			Name:        "Wireless Bluetooth Earbuds",
			Price:       99.99,
			Description: "Premium wireless earbuds with active noise cancellation, touch controls, and long battery life.",
			Category:    models.CategoryGadgets,
			Images: []string{
				"/images/products/wireless-earbuds.jpg",
				"/images/products/wireless-earbuds-case.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "Black", Code: "#1F2937"},
				{Name: "White", Code: "#FFFFFF"},
				{Name: "Green", Code: "#166534"},
			},
			Stock:    60,
			Featured: true,
		},
		{
			ID:          "7",
			Name:        "Smart Fitness Tracker",
			Price:       149.99,
			Description: "Advanced fitness tracker with heart rate monitoring, sleep tracking, and smartphone notifications.",
			Category:    models.CategoryGadgets,
			Images: []string{
				"/images/products/fitness-tracker.jpg",
				"/images/products/fitness-tracker-app.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "Black", Code: "#1F2937"},
				{Name: "Blue", Code: "#1E40AF"},
				{Name: "Pink", Code: "#DB2777"},
			},
			Stock: 40,
		},
		{
			ID:          "8",
			Name:        "Oversized Graphic T-Shirt",
			Price:       39.99,
			Description: "Comfortable cotton oversized t-shirt with bold graphic print, perfect for casual styling.",
			Category:    models.CategoryClothing,
			Images: []string{
				"/images/products/graphic-tshirt.jpg",
				"/images/products/graphic-tshirt-back.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "White", Code: "#FFFFFF"},
				{Name: "Black", Code: "#1F2937"},
				{Name: "Grey", Code: "#6B7280"},
			},
			Sizes:    []string{"S", "M", "L", "XL", "XXL"},
			Stock:    75,
			Featured: true,
		},
		{
			ID:          "9",
			Name:        "Slim Fit Denim Jeans",
			Price:       79.99,
			Description: "Classic slim fit jeans made from premium stretch denim for maximum comfort and style.",
			Category:    models.CategoryClothing,
			Images: []string{
				"/images/products/slim-jeans.jpg",
				"/images/products/slim-jeans-back.jpg",
			},
			Colors: []models.ProductColor{
				{Name: "Blue", Code: "#1E40AF"},
				{Name: "Black", Code: "#1F2937"},
				{Name: "Grey", Code: "#6B7280"},
			},
			Sizes: []string{"28", "30", "32", "34", "36", "38"},
			Stock: 55,
		},
	}
}

// Orders returns the historical demo orders.
func Orders() []models.Order {
	return []models.Order{
		{
			ID: "ORD-2023-0001",
			Items: []models.OrderItem{
				{ProductID: "1", ProductName: "Nike Air Jordan 1 Retro High", Quantity: 1, Price: 189.99, Color: "Blue", Size: "10"},
			},
			Total:           189.99,
			Status:          models.StatusProcessing,
			CustomerName:    "John Doe",
			CustomerPhone:   "555-123-4567",
			CustomerAddress: "123 Main St, Anytown, USA",
			OrderDate:       time.Date(2023, 5, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			ID: "ORD-2023-0002",
			Items: []models.OrderItem{
				{ProductID: "5", ProductName: "Converse Chuck Taylor High Top", Quantity: 1, Price: 79.99, Color: "Black", Size: "8"},
				{ProductID: "8", ProductName: "Oversized Graphic T-Shirt", Quantity: 2, Price: 39.99, Color: "White", Size: "L"},
			},
			Total:           159.97,
			Status:          models.StatusOutForDelivery,
			CustomerName:    "Jane Smith",
			CustomerPhone:   "555-987-6543",
			CustomerAddress: "456 Oak Ave, Somewhere, USA",
			OrderDate:       time.Date(2023, 5, 12, 10, 15, 0, 0, time.UTC),
		},
		{
			ID: "ORD-2023-0003",
			Items: []models.OrderItem{
				{ProductID: "6", ProductName: "Wireless Bluetooth Earbuds", Quantity: 1, Price: 99.99, Color: "Black"},
			},
			Total:           99.99,
			Status:          models.StatusDelivered,
			CustomerName:    "Robert Johnson",
			CustomerPhone:   "555-555-1212",
			CustomerAddress: "789 Elm St, Elsewhere, USA",
			OrderDate:       time.Date(2023, 5, 1, 16, 45, 0, 0, time.UTC),
		},
	}
}

// Users returns the two demo accounts with their passwords bcrypt-hashed.
func Users() ([]models.User, error) {
	accounts := []struct {
		id       string
		email    string
		password string
		role     models.Role
	}{
		{"admin-1", "admin@gbstore.com", "admin123", models.RoleAdmin},
		{"customer-1", "customer@example.com", "customer123", models.RoleCustomer},
	}

	users := make([]models.User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", a.email, err)
		}
		users = append(users, models.User{
			ID:       a.id,
			Email:    a.email,
			Role:     a.role,
			Password: string(hash),
		})
	}
	return users, nil
}

// All seeds every repository with the demo data. Products and users that
// already exist (a restarted server over a persistent database) are left
// alone.
func All(products repositories.ProductRepository, orders repositories.OrderRepository, users repositories.UserRepository) error {
	for _, p := range Products() {
		if _, err := products.GetByID(p.ID); err == nil {
			continue
		}
		product := p
		if err := products.Create(&product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
		log.Printf("Seeded product: %s (ID: %s)", p.Name, p.ID)
	}

	for _, o := range Orders() {
		if _, err := orders.GetByID(o.ID); err == nil {
			continue
		}
		order := o
		if err := orders.Create(&order); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", o.ID, err)
		}
	}

	demoUsers, err := Users()
	if err != nil {
		return err
	}
	for _, u := range demoUsers {
		if _, err := users.GetByEmail(u.Email); err == nil {
			continue
		}
		user := u
		if err := users.Create(&user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		log.Printf("Seeded user: %s (%s)", u.Email, u.Role)
	}

	return nil
}
