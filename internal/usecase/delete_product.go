package usecase

import (
	"go-product-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type DeleteProductUseCase struct {
	repo repository.ProductRepository
	log  *logrus.Logger
}

func NewDeleteProductUseCase(repo repository.ProductRepository, log *logrus.Logger) *DeleteProductUseCase {
	return &DeleteProductUseCase{repo: repo, log: log}
}

// Execute returns false without error when no product has the given id.
func (uc *DeleteProductUseCase) Execute(id uint) (bool, error) {
	product, err := uc.repo.FindByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}

	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}

	uc.log.Infof("Product ID %d deleted", id)
	return true, nil
}
