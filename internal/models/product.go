package models

import "gorm.io/gorm"

// Category is the fixed set of catalog categories.
type Category string

const (
	CategoryShoes    Category = "shoes"
	CategoryClothing Category = "clothing"
	CategoryGadgets  Category = "gadgets"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryShoes, CategoryClothing, CategoryGadgets:
		return true
	}
	return false
}

// ProductColor is a named color variant with its display code.
type ProductColor struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// Product represents a product in the store catalog.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string         `json:"name" validate:"required,min=3,max=100"`
	Price       float64        `json:"price" validate:"required,gt=0"`
	Description string         `json:"description" validate:"omitempty,max=500"`
	Category    Category       `json:"category" validate:"required,oneof=shoes clothing gadgets"`
	Images      []string       `json:"images" gorm:"serializer:json"`
	Colors      []ProductColor `json:"colors" gorm:"serializer:json" validate:"required,min=1,dive"`
	Sizes       []string       `json:"sizes,omitempty" gorm:"serializer:json"`
	Stock       int            `json:"stock" validate:"gte=0"`
	Featured    bool           `json:"featured"`
	gorm.Model  `json:"-"`
}
