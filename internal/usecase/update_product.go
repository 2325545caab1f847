package usecase

import (
	"go-product-catalog/internal/dto"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type UpdateProductUseCase struct {
	repo repository.ProductRepository
	log  *logrus.Logger
}

func NewUpdateProductUseCase(repo repository.ProductRepository, log *logrus.Logger) *UpdateProductUseCase {
	return &UpdateProductUseCase{repo: repo, log: log}
}

// Execute applies a sparse change set to an existing product. Fields are
// applied in the fixed order name, price, stock, category; each one is
// mutated on the entity and persisted on its own before the next field is
// touched. There is no rollback: a failure on a later field leaves earlier
// fields already committed. Returns (nil, nil) when the id does not exist,
// including when a concurrent delete removes it mid-sequence.
func (uc *UpdateProductUseCase) Execute(id uint, input dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		uc.log.Warnf("Update requested for missing product ID %d", id)
		return nil, nil
	}

	if input.Name != nil {
		product.UpdateName(*input.Name)
		if err := uc.repo.UpdateName(product); err != nil {
			return nil, err
		}
	}

	if input.Price != nil {
		product.UpdatePrice(*input.Price)
		if err := uc.repo.UpdatePrice(product); err != nil {
			return nil, err
		}
	}

	if input.Stock != nil {
		product.UpdateStock(*input.Stock)
		if err := uc.repo.UpdateStock(product); err != nil {
			return nil, err
		}
	}

	if input.Category != nil {
		if err := product.SetCategory(model.Category(*input.Category)); err != nil {
			uc.log.Warnf("Rejected category '%s' for product ID %d", *input.Category, id)
			return nil, err
		}
		if err := uc.repo.UpdateCategory(product); err != nil {
			return nil, err
		}
	}

	updated, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	uc.log.Infof("Product ID %d updated", id)
	return dto.ToProductResponse(updated), nil
}
