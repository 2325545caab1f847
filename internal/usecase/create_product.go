package usecase

import (
	"go-product-catalog/internal/dto"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type CreateProductUseCase struct {
	repo repository.ProductRepository
	log  *logrus.Logger
}

func NewCreateProductUseCase(repo repository.ProductRepository, log *logrus.Logger) *CreateProductUseCase {
	return &CreateProductUseCase{repo: repo, log: log}
}

func (uc *CreateProductUseCase) Execute(input dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := model.NewProduct(input.Name, input.Price, input.Stock, model.Category(input.Category))
	if err != nil {
		uc.log.Warnf("Rejected product '%s': %v", input.Name, err)
		return nil, err
	}

	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}

	uc.log.Infof("Product '%s' created with ID %d", product.Name, product.ID)
	return dto.ToProductResponse(product), nil
}
