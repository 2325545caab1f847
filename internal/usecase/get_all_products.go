package usecase

import (
	"go-product-catalog/internal/dto"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type GetAllProductsUseCase struct {
	repo repository.ProductRepository
	log  *logrus.Logger
}

func NewGetAllProductsUseCase(repo repository.ProductRepository, log *logrus.Logger) *GetAllProductsUseCase {
	return &GetAllProductsUseCase{repo: repo, log: log}
}

func (uc *GetAllProductsUseCase) Execute() ([]dto.ProductResponse, error) {
	products, err := uc.repo.FindAll()
	if err != nil {
		uc.log.Errorf("Failed to list products: %v", err)
		return nil, err
	}
	return dto.ToProductResponseList(products), nil
}

// ExecuteByCategory lists products in one category. An unknown category
// simply matches nothing.
func (uc *GetAllProductsUseCase) ExecuteByCategory(category model.Category) ([]dto.ProductResponse, error) {
	products, err := uc.repo.FindByCategory(category)
	if err != nil {
		uc.log.Errorf("Failed to list products for category %s: %v", category, err)
		return nil, err
	}
	return dto.ToProductResponseList(products), nil
}

func (uc *GetAllProductsUseCase) ExecuteByPriceRange(minPrice, maxPrice float64) ([]dto.ProductResponse, error) {
	products, err := uc.repo.FindByPriceRange(minPrice, maxPrice)
	if err != nil {
		uc.log.Errorf("Failed to list products in price range [%.2f, %.2f]: %v", minPrice, maxPrice, err)
		return nil, err
	}
	return dto.ToProductResponseList(products), nil
}
