package services

import (
	"fmt"

	"gbstore/internal/models"
	"gbstore/internal/repositories"
)

// ProductService handles catalog lookups and admin product management.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsByCategory retrieves the products in one category.
func (s *ProductService) GetProductsByCategory(category models.Category) ([]models.Product, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category: %s", category)
	}
	return s.repo.GetByCategory(category)
}

// GetFeaturedProducts retrieves the products flagged for the storefront
// showcase.
func (s *ProductService) GetFeaturedProducts() ([]models.Product, error) {
	return s.repo.GetFeatured()
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if !product.Category.Valid() {
		return fmt.Errorf("unknown category: %s", product.Category)
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if !product.Category.Valid() {
		return fmt.Errorf("unknown category: %s", product.Category)
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
