package dto

import (
	"time"

	"go-product-catalog/internal/model"
)

// CreateProductRequest carries the fields needed to create a product.
// Price and stock are deliberately not range-checked here.
type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category" validate:"required,category"`
}

// UpdateProductRequest is a sparse change set: nil means "leave untouched".
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Category *string  `json:"category"`
}

// ProductResponse is the read-only projection returned across the HTTP
// boundary.
type ProductResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProductResponse(p *model.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Category:  string(p.Category),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToProductResponseList(products []model.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses
}
