package model

import (
	"errors"
	"time"
)

var ErrInsufficientStock = errors.New("not enough stock")

// Product is one catalog item. ID is zero until the store assigns it on
// save. All mutation goes through the named mutators below; each successful
// mutation refreshes UpdatedAt.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	Category  Category  `gorm:"type:varchar(50);not null;index" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct builds an unsaved product. The category must be a valid member;
// price and stock are taken as given (the caller is trusted here).
func NewProduct(name string, price float64, stock int, category Category) (*Product, error) {
	product := &Product{
		Name:  name,
		Price: price,
		Stock: stock,
	}
	if err := product.SetCategory(category); err != nil {
		return nil, err
	}
	return product, nil
}

// HasStock reports whether quantity units can be removed without underflow.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock-quantity >= 0
}

// RemoveStock decrements stock by quantity, guarding against underflow.
func (p *Product) RemoveStock(quantity int) error {
	if !p.HasStock(quantity) {
		return ErrInsufficientStock
	}
	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateStock sets stock to quantity with no range check.
func (p *Product) UpdateStock(quantity int) {
	p.Stock = quantity
	p.UpdatedAt = time.Now()
}

func (p *Product) UpdateName(name string) {
	p.Name = name
	p.UpdatedAt = time.Now()
}

func (p *Product) UpdatePrice(price float64) {
	p.Price = price
	p.UpdatedAt = time.Now()
}

// SetCategory rejects anything outside the category set and leaves the
// current value untouched on failure.
func (p *Product) SetCategory(category Category) error {
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	p.Category = category
	p.UpdatedAt = time.Now()
	return nil
}
