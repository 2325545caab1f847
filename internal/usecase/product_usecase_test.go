package usecase

import (
	"io"
	"testing"

	"go-product-catalog/internal/dto"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func createWidget(t *testing.T, repo repository.ProductRepository) *dto.ProductResponse {
	t.Helper()
	created, err := NewCreateProductUseCase(repo, testLogger()).Execute(dto.CreateProductRequest{
		Name:     "Widget",
		Price:    10,
		Stock:    5,
		Category: "Electronics",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := repository.NewMemoryProductRepo()
	created := createWidget(t, repo)

	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	fetched, err := NewGetProductByIDUseCase(repo, testLogger()).Execute(created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Widget", fetched.Name)
	assert.Equal(t, 10.0, fetched.Price)
	assert.Equal(t, 5, fetched.Stock)
	assert.Equal(t, "Electronics", fetched.Category)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	repo := repository.NewMemoryProductRepo()

	created, err := NewCreateProductUseCase(repo, testLogger()).Execute(dto.CreateProductRequest{
		Name:     "Widget",
		Price:    10,
		Stock:    5,
		Category: "Bogus",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCategory)
	assert.Nil(t, created)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByIDAbsence(t *testing.T) {
	repo := repository.NewMemoryProductRepo()

	fetched, err := NewGetProductByIDUseCase(repo, testLogger()).Execute(9999)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestGetAllAndFilters(t *testing.T) {
	repo := repository.NewMemoryProductRepo()
	create := NewCreateProductUseCase(repo, testLogger())

	for _, req := range []dto.CreateProductRequest{
		{Name: "Laptop", Price: 1200, Stock: 4, Category: "Electronics"},
		{Name: "Novel", Price: 15, Stock: 50, Category: "Books"},
		{Name: "Headphones", Price: 80, Stock: 2, Category: "Electronics"},
	} {
		_, err := create.Execute(req)
		require.NoError(t, err)
	}

	getAll := NewGetAllProductsUseCase(repo, testLogger())

	all, err := getAll.Execute()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	electronics, err := getAll.ExecuteByCategory(model.CategoryElectronics)
	require.NoError(t, err)
	assert.Len(t, electronics, 2)

	midRange, err := getAll.ExecuteByPriceRange(10, 100)
	require.NoError(t, err)
	assert.Len(t, midRange, 2)
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	repo := repository.NewMemoryProductRepo()
	created := createWidget(t, repo)

	updated, err := NewUpdateProductUseCase(repo, testLogger()).Execute(created.ID, dto.UpdateProductRequest{
		Price: floatPtr(12),
		Stock: intPtr(3),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, 12.0, updated.Price)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Electronics", updated.Category)
}

func TestUpdateNonexistentID(t *testing.T) {
	repo := repository.NewMemoryProductRepo()

	updated, err := NewUpdateProductUseCase(repo, testLogger()).Execute(9999, dto.UpdateProductRequest{
		Name: strPtr("Ghost"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

// Field steps are independent mutate-then-persist calls with no rollback:
// when the category is invalid, the fields ordered before it have already
// been committed. This test pins that observable partial application.
func TestUpdateInvalidCategoryAppliesEarlierFields(t *testing.T) {
	repo := repository.NewMemoryProductRepo()
	created := createWidget(t, repo)

	updated, err := NewUpdateProductUseCase(repo, testLogger()).Execute(created.ID, dto.UpdateProductRequest{
		Name:     strPtr("Gadget"),
		Price:    floatPtr(15),
		Category: strPtr("Bogus"),
	})
	assert.ErrorIs(t, err, model.ErrInvalidCategory)
	assert.Nil(t, updated)

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Gadget", stored.Name)
	assert.Equal(t, 15.0, stored.Price)
	assert.Equal(t, model.CategoryElectronics, stored.Category)
}

func TestUpdateUncheckedNegativeStock(t *testing.T) {
	repo := repository.NewMemoryProductRepo()
	created := createWidget(t, repo)

	updated, err := NewUpdateProductUseCase(repo, testLogger()).Execute(created.ID, dto.UpdateProductRequest{
		Stock: intPtr(-3),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, -3, updated.Stock)
}

func TestDeleteTwice(t *testing.T) {
	repo := repository.NewMemoryProductRepo()
	created := createWidget(t, repo)

	deleteUC := NewDeleteProductUseCase(repo, testLogger())

	deleted, err := deleteUC.Execute(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = deleteUC.Execute(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
