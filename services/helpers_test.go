package services

import (
	"context"
	"errors"
	"testing"

	"aliccedress/models"
	"aliccedress/repositories"
	"aliccedress/utils"

	"github.com/stretchr/testify/require"
)

var errStorageDown = errors.New("storage down")

// flakyStorage fails every write, or only writes to failKey.
type flakyStorage struct {
	repositories.Storage
	failWrites bool
	failKey    string
}

func (f *flakyStorage) Set(ctx context.Context, key string, value []byte) error {
	if f.failWrites || key == f.failKey {
		return errStorageDown
	}
	return f.Storage.Set(ctx, key, value)
}

func (f *flakyStorage) Remove(ctx context.Context, key string) error {
	if f.failWrites || key == f.failKey {
		return errStorageDown
	}
	return f.Storage.Remove(ctx, key)
}

var testSeed = &SeedAccount{
	Name:     "Тестовый пользователь",
	Email:    "test@example.com",
	Phone:    "+7 (999) 123-45-67",
	Password: "password123",
}

func newTestCart(t *testing.T, storage repositories.Storage) *CartStore {
	t.Helper()
	cart, err := NewCartStore(context.Background(), repositories.NewCartRepository(storage))
	require.NoError(t, err)
	return cart
}

func newTestProfile(t *testing.T, storage repositories.Storage) *ProfileStore {
	t.Helper()
	profile, err := NewProfileStore(context.Background(), repositories.NewUserRepository(storage), utils.PlainScheme{}, testSeed)
	require.NoError(t, err)
	return profile
}

func newTestNavigator(t *testing.T, storage repositories.Storage, opts ...NavigatorOption) *Navigator {
	t.Helper()
	catalog := NewCatalogService(repositories.NewProductRepository())
	return NewNavigator(catalog, newTestCart(t, storage), newTestProfile(t, storage), opts...)
}

func product(id, price int) models.Product {
	return models.Product{ID: id, Title: "Товар", Price: price, ImageURL: "/assets/item.jpg"}
}
