package services

import (
	"context"
	"testing"

	"aliccedress/apperror"
	"aliccedress/models"
	"aliccedress/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemSameProductKeepsOneLine(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, repositories.NewMemoryStorage())

	for i := 1; i <= 5; i++ {
		require.NoError(t, cart.AddItem(ctx, product(3, 3999)))

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].ID)
		assert.Equal(t, i, items[0].Quantity)
	}
}

func TestAddItemCopiesProductFields(t *testing.T) {
	cart := newTestCart(t, repositories.NewMemoryStorage())
	p := models.Product{ID: 2, Title: "Джинсовая куртка", Price: 7999, ImageURL: "/assets/jacket.jpg"}

	require.NoError(t, cart.AddItem(context.Background(), p))

	assert.Equal(t, []models.CartLineItem{
		{ID: 2, Title: "Джинсовая куртка", Price: 7999, Quantity: 1, ImageURL: "/assets/jacket.jpg"},
	}, cart.Items())
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -1} {
		ctx := context.Background()
		cart := newTestCart(t, repositories.NewMemoryStorage())
		require.NoError(t, cart.AddItem(ctx, product(1, 100)))
		require.NoError(t, cart.AddItem(ctx, product(2, 200)))

		require.NoError(t, cart.UpdateQuantity(ctx, 1, qty))

		items := cart.Items()
		require.Len(t, items, 1, "quantity %d", qty)
		assert.Equal(t, 2, items[0].ID)
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, repositories.NewMemoryStorage())
	require.NoError(t, cart.AddItem(ctx, product(1, 100)))
	before := cart.Items()

	require.NoError(t, cart.UpdateQuantity(ctx, 42, 3))

	assert.Equal(t, before, cart.Items())
}

func TestRemoveItemAbsentIDLeavesCartAndStorage(t *testing.T) {
	ctx := context.Background()
	storage := repositories.NewMemoryStorage()
	cart := newTestCart(t, storage)

	require.NoError(t, cart.RemoveItem(ctx, 7))

	assert.Empty(t, cart.Items())
	assert.Empty(t, storage.Keys())

	require.NoError(t, cart.AddItem(ctx, product(1, 100)))
	before := cart.Items()
	require.NoError(t, cart.RemoveItem(ctx, 7))
	assert.Equal(t, before, cart.Items())
}

func TestTotalAfterQuantityUpdate(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, repositories.NewMemoryStorage())

	require.NoError(t, cart.AddItem(ctx, product(1, 100)))
	require.NoError(t, cart.AddItem(ctx, product(1, 100)))
	require.NoError(t, cart.UpdateQuantity(ctx, 1, 5))

	assert.Equal(t, 500, cart.Total())
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartScenarioTwoProducts(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t, repositories.NewMemoryStorage())

	require.NoError(t, cart.AddItem(ctx, product(1, 4599)))
	require.NoError(t, cart.AddItem(ctx, product(2, 7999)))
	require.NoError(t, cart.AddItem(ctx, product(1, 4599)))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 17197, cart.Total())
	assert.Equal(t, 3, cart.ItemCount())
}

func TestClearThenReloadIsEmpty(t *testing.T) {
	ctx := context.Background()
	storage := repositories.NewMemoryStorage()
	seeded := newTestCart(t, storage)
	require.NoError(t, seeded.AddItem(ctx, product(1, 100)))
	require.NoError(t, seeded.AddItem(ctx, product(2, 200)))

	cart := newTestCart(t, storage)
	require.Len(t, cart.Items(), 2)

	require.NoError(t, cart.Clear(ctx))
	require.NoError(t, cart.Reload(ctx))

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
	_, err := storage.Get(ctx, repositories.KeyCart)
	assert.ErrorIs(t, err, repositories.ErrKeyNotFound)
}

func TestCartPersistsAcrossStores(t *testing.T) {
	ctx := context.Background()
	storage := repositories.NewMemoryStorage()
	first := newTestCart(t, storage)
	require.NoError(t, first.AddItem(ctx, product(5, 6599)))
	require.NoError(t, first.UpdateQuantity(ctx, 5, 4))

	second := newTestCart(t, storage)

	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, 4*6599, second.Total())
}

func TestCartWriteFailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	storage := &flakyStorage{Storage: repositories.NewMemoryStorage()}
	cart := newTestCart(t, storage)
	require.NoError(t, cart.AddItem(ctx, product(1, 100)))

	storage.failWrites = true
	err := cart.AddItem(ctx, product(1, 100))

	require.Error(t, err)
	assert.Equal(t, apperror.CodeDependency, apperror.CodeOf(err))
	assert.ErrorIs(t, err, errStorageDown)
	assert.Equal(t, 1, cart.Items()[0].Quantity)

	require.Error(t, cart.Clear(ctx))
	assert.Len(t, cart.Items(), 1)
}
