package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepositoryCatalog(t *testing.T) {
	repo := NewProductRepository()

	products := repo.GetAllProducts()
	require.Len(t, products, 9)

	seen := map[int]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Title)
		assert.Positive(t, p.Price)
	}

	p, ok := repo.GetProductByID(2)
	require.True(t, ok)
	assert.Equal(t, 7999, p.Price)

	_, ok = repo.GetProductByID(42)
	assert.False(t, ok)
}

func TestProductRepositoryReturnsCopy(t *testing.T) {
	repo := NewProductRepository()

	products := repo.GetAllProducts()
	products[0].Price = 1

	p, _ := repo.GetProductByID(products[0].ID)
	assert.NotEqual(t, 1, p.Price)
}
