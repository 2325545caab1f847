package service

import (
	"go-product-catalog/internal/dto"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/usecase"

	"github.com/sirupsen/logrus"
)

// ProductService aggregates the product use cases behind one surface for
// the HTTP layer. It is pure delegation; orchestration lives in the use
// cases themselves.
type ProductService interface {
	CreateProduct(input dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProductByID(id uint) (*dto.ProductResponse, error)
	GetAllProducts() ([]dto.ProductResponse, error)
	GetProductsByCategory(category model.Category) ([]dto.ProductResponse, error)
	GetProductsByPriceRange(minPrice, maxPrice float64) ([]dto.ProductResponse, error)
	UpdateProduct(id uint, input dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(id uint) (bool, error)
}

type productService struct {
	createProduct  *usecase.CreateProductUseCase
	getProductByID *usecase.GetProductByIDUseCase
	getAllProducts *usecase.GetAllProductsUseCase
	updateProduct  *usecase.UpdateProductUseCase
	deleteProduct  *usecase.DeleteProductUseCase
}

func NewProductService(repo repository.ProductRepository, log *logrus.Logger) ProductService {
	return &productService{
		createProduct:  usecase.NewCreateProductUseCase(repo, log),
		getProductByID: usecase.NewGetProductByIDUseCase(repo, log),
		getAllProducts: usecase.NewGetAllProductsUseCase(repo, log),
		updateProduct:  usecase.NewUpdateProductUseCase(repo, log),
		deleteProduct:  usecase.NewDeleteProductUseCase(repo, log),
	}
}

func (s *productService) CreateProduct(input dto.CreateProductRequest) (*dto.ProductResponse, error) {
	return s.createProduct.Execute(input)
}

func (s *productService) GetProductByID(id uint) (*dto.ProductResponse, error) {
	return s.getProductByID.Execute(id)
}

func (s *productService) GetAllProducts() ([]dto.ProductResponse, error) {
	return s.getAllProducts.Execute()
}

func (s *productService) GetProductsByCategory(category model.Category) ([]dto.ProductResponse, error) {
	return s.getAllProducts.ExecuteByCategory(category)
}

func (s *productService) GetProductsByPriceRange(minPrice, maxPrice float64) ([]dto.ProductResponse, error) {
	return s.getAllProducts.ExecuteByPriceRange(minPrice, maxPrice)
}

func (s *productService) UpdateProduct(id uint, input dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return s.updateProduct.Execute(id, input)
}

func (s *productService) DeleteProduct(id uint) (bool, error) {
	return s.deleteProduct.Execute(id)
}
