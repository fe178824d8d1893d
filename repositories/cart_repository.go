package repositories

import (
	"context"
	"fmt"

	"aliccedress/models"
)

type CartRepository struct {
	storage Storage
}

func NewCartRepository(storage Storage) *CartRepository {
	return &CartRepository{storage: storage}
}

// Load returns the stored line items. An absent key yields an empty cart.
func (r *CartRepository) Load(ctx context.Context) ([]models.CartLineItem, error) {
	items := []models.CartLineItem{}
	found, err := loadJSON(ctx, r.storage, KeyCart, &items)
	if err != nil {
		return nil, err
	}
	if !found || items == nil {
		items = []models.CartLineItem{}
	}
	return items, nil
}

func (r *CartRepository) Save(ctx context.Context, items []models.CartLineItem) error {
	if items == nil {
		items = []models.CartLineItem{}
	}
	return saveJSON(ctx, r.storage, KeyCart, items)
}

// Delete removes the cart key instead of writing an empty list.
func (r *CartRepository) Delete(ctx context.Context) error {
	if err := r.storage.Remove(ctx, KeyCart); err != nil {
		return fmt.Errorf("remove %s: %w", KeyCart, err)
	}
	return nil
}
