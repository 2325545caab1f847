package repository

import (
	"sync"
	"time"

	"go-product-catalog/internal/model"
)

// memoryProductRepo is a map-backed ProductRepository used by tests and
// local development. Ids are assigned from an in-process counter; stored
// entities are copied on the way in and out so callers never alias the map.
type memoryProductRepo struct {
	mu       sync.RWMutex
	products map[uint]model.Product
	nextID   uint
}

func NewMemoryProductRepo() ProductRepository {
	return &memoryProductRepo{
		products: make(map[uint]model.Product),
		nextID:   1,
	}
}

func (r *memoryProductRepo) Save(product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	product.ID = r.nextID
	r.nextID++
	product.CreatedAt = now
	product.UpdatedAt = now

	r.products[product.ID] = *product
	return nil
}

func (r *memoryProductRepo) FindByID(id uint) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *memoryProductRepo) FindAll() ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for id := uint(1); id < r.nextID; id++ {
		if product, ok := r.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *memoryProductRepo) FindByCategory(category model.Category) ([]model.Product, error) {
	return r.filter(func(p model.Product) bool { return p.Category == category })
}

func (r *memoryProductRepo) FindByName(name string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := uint(1); id < r.nextID; id++ {
		if product, ok := r.products[id]; ok && product.Name == name {
			return &product, nil
		}
	}
	return nil, nil
}

func (r *memoryProductRepo) FindByPriceRange(minPrice, maxPrice float64) ([]model.Product, error) {
	return r.filter(func(p model.Product) bool { return p.Price >= minPrice && p.Price <= maxPrice })
}

func (r *memoryProductRepo) FindLowStockProducts(threshold int) ([]model.Product, error) {
	return r.filter(func(p model.Product) bool { return p.Stock <= threshold })
}

func (r *memoryProductRepo) filter(keep func(model.Product) bool) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []model.Product{}
	for id := uint(1); id < r.nextID; id++ {
		if product, ok := r.products[id]; ok && keep(product) {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *memoryProductRepo) UpdateName(product *model.Product) error {
	return r.updateField(product, func(stored *model.Product) {
		stored.Name = product.Name
	})
}

func (r *memoryProductRepo) UpdatePrice(product *model.Product) error {
	return r.updateField(product, func(stored *model.Product) {
		stored.Price = product.Price
	})
}

func (r *memoryProductRepo) UpdateStock(product *model.Product) error {
	return r.updateField(product, func(stored *model.Product) {
		stored.Stock = product.Stock
	})
}

func (r *memoryProductRepo) UpdateCategory(product *model.Product) error {
	return r.updateField(product, func(stored *model.Product) {
		stored.Category = product.Category
	})
}

func (r *memoryProductRepo) updateField(product *model.Product, apply func(*model.Product)) error {
	if product.ID == 0 {
		return ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[product.ID]
	if !ok {
		return ErrProductNotFound
	}
	apply(&stored)
	stored.UpdatedAt = product.UpdatedAt
	r.products[product.ID] = stored
	return nil
}

func (r *memoryProductRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memoryProductRepo) Exists(id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.products[id]
	return ok, nil
}

func (r *memoryProductRepo) ExistsByName(name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if product.Name == name {
			return true, nil
		}
	}
	return false, nil
}
