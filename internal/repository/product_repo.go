package repository

import (
	"errors"

	"go-product-catalog/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound is returned by write operations whose target id has
	// no matching record. Read misses are (nil, nil), never this error.
	ErrProductNotFound = errors.New("product not found")
	// ErrMissingID is returned when a per-field update is attempted on an
	// entity that was never saved.
	ErrMissingID = errors.New("product must have an ID to be updated")
)

// ProductRepository is the persistence contract over model.Product. The
// UpdateXxx methods persist the single already-mutated field from the given
// in-memory entity, keyed by its id.
type ProductRepository interface {
	Save(product *model.Product) error
	FindByID(id uint) (*model.Product, error)
	FindAll() ([]model.Product, error)
	FindByCategory(category model.Category) ([]model.Product, error)
	FindByName(name string) (*model.Product, error)
	FindByPriceRange(minPrice, maxPrice float64) ([]model.Product, error)
	FindLowStockProducts(threshold int) ([]model.Product, error)
	UpdateName(product *model.Product) error
	UpdatePrice(product *model.Product) error
	UpdateStock(product *model.Product) error
	UpdateCategory(product *model.Product) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
	ExistsByName(name string) (bool, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewProductRepo(db *gorm.DB, log *logrus.Logger) ProductRepository {
	return &productRepo{db: db, log: log}
}

func (r *productRepo) Save(product *model.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		r.log.Errorf("Failed to save product '%s': %v", product.Name, err)
		return err
	}
	r.log.Infof("Product saved with ID %d", product.ID)
	return nil
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByCategory(category model.Category) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category = ?", category).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByPriceRange(minPrice, maxPrice float64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("price BETWEEN ? AND ?", minPrice, maxPrice).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindLowStockProducts(threshold int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("stock <= ?", threshold).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) UpdateName(product *model.Product) error {
	return r.updateColumn(product, "name", product.Name)
}

func (r *productRepo) UpdatePrice(product *model.Product) error {
	return r.updateColumn(product, "price", product.Price)
}

func (r *productRepo) UpdateStock(product *model.Product) error {
	return r.updateColumn(product, "stock", product.Stock)
}

func (r *productRepo) UpdateCategory(product *model.Product) error {
	return r.updateColumn(product, "category", product.Category)
}

// updateColumn writes a single column plus the entity's refreshed UpdatedAt.
func (r *productRepo) updateColumn(product *model.Product, column string, value interface{}) error {
	if product.ID == 0 {
		return ErrMissingID
	}
	result := r.db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			column:       value,
			"updated_at": product.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Errorf("Failed to update %s for product ID %d: %v", column, product.ID, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *productRepo) Delete(id uint) error {
	result := r.db.Delete(&model.Product{}, "id = ?", id)
	if result.Error != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	r.log.Infof("Product deleted with ID %d", id)
	return nil
}

func (r *productRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productRepo) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
