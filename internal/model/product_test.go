package model_test

import (
	"testing"

	"go-product-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		product, err := model.NewProduct("Widget", 10, 5, model.CategoryElectronics)

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, 10.0, product.Price)
		assert.Equal(t, 5, product.Stock)
		assert.Equal(t, model.CategoryElectronics, product.Category)
		assert.Zero(t, product.ID)
	})

	t.Run("Fail on unknown category", func(t *testing.T) {
		product, err := model.NewProduct("Widget", 10, 5, model.Category("Bogus"))

		assert.ErrorIs(t, err, model.ErrInvalidCategory)
		assert.Nil(t, product)
	})
}

func TestSetCategory(t *testing.T) {
	for _, category := range model.Categories() {
		product, err := model.NewProduct("Widget", 10, 5, model.CategoryFood)
		require.NoError(t, err)

		require.NoError(t, product.SetCategory(category))
		assert.Equal(t, category, product.Category)
	}

	t.Run("Invalid member leaves category unchanged", func(t *testing.T) {
		product, err := model.NewProduct("Widget", 10, 5, model.CategoryFood)
		require.NoError(t, err)

		err = product.SetCategory(model.Category("Gadgets"))
		assert.ErrorIs(t, err, model.ErrInvalidCategory)
		assert.Equal(t, model.CategoryFood, product.Category)
	})
}

func TestHasStock(t *testing.T) {
	product, err := model.NewProduct("Widget", 10, 5, model.CategoryElectronics)
	require.NoError(t, err)

	assert.True(t, product.HasStock(0))
	assert.True(t, product.HasStock(5))
	assert.False(t, product.HasStock(6))
}

func TestRemoveStock(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		product, err := model.NewProduct("Widget", 10, 5, model.CategoryElectronics)
		require.NoError(t, err)

		require.NoError(t, product.RemoveStock(3))
		assert.Equal(t, 2, product.Stock)
	})

	t.Run("Down to exactly zero", func(t *testing.T) {
		product, err := model.NewProduct("Widget", 10, 5, model.CategoryElectronics)
		require.NoError(t, err)

		require.NoError(t, product.RemoveStock(5))
		assert.Equal(t, 0, product.Stock)
	})

	t.Run("Fail on underflow, stock unchanged", func(t *testing.T) {
		product, err := model.NewProduct("Widget", 10, 5, model.CategoryElectronics)
		require.NoError(t, err)

		err = product.RemoveStock(6)
		assert.ErrorIs(t, err, model.ErrInsufficientStock)
		assert.Equal(t, 5, product.Stock)
	})
}

// UpdateStock performs no range check; a negative quantity is stored as
// given. This mirrors the trust-the-caller contract of the setter.
func TestUpdateStockUnchecked(t *testing.T) {
	product, err := model.NewProduct("Widget", 10, 5, model.CategoryElectronics)
	require.NoError(t, err)

	product.UpdateStock(42)
	assert.Equal(t, 42, product.Stock)

	product.UpdateStock(-3)
	assert.Equal(t, -3, product.Stock)
}

func TestUpdateNameIdempotent(t *testing.T) {
	product, err := model.NewProduct("Widget", 10, 5, model.CategoryElectronics)
	require.NoError(t, err)

	product.UpdateName("Gadget")
	first := product.UpdatedAt

	product.UpdateName("Gadget")
	assert.Equal(t, "Gadget", product.Name)
	assert.False(t, product.UpdatedAt.Before(first))
}

func TestMutatorsRefreshUpdatedAt(t *testing.T) {
	product, err := model.NewProduct("Widget", 10, 5, model.CategoryElectronics)
	require.NoError(t, err)

	before := product.UpdatedAt
	product.UpdatePrice(12.5)
	assert.Equal(t, 12.5, product.Price)
	assert.False(t, product.UpdatedAt.Before(before))
}
