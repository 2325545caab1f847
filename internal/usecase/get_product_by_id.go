package usecase

import (
	"go-product-catalog/internal/dto"
	"go-product-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type GetProductByIDUseCase struct {
	repo repository.ProductRepository
	log  *logrus.Logger
}

func NewGetProductByIDUseCase(repo repository.ProductRepository, log *logrus.Logger) *GetProductByIDUseCase {
	return &GetProductByIDUseCase{repo: repo, log: log}
}

// Execute returns (nil, nil) when no product has the given id.
func (uc *GetProductByIDUseCase) Execute(id uint) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return dto.ToProductResponse(product), nil
}
