package services

import (
	"context"

	"aliccedress/apperror"
	"aliccedress/models"
	"aliccedress/repositories"
)

// CartStore keeps the cart line items in memory and mirrors every change
// to storage before returning. It is not safe for concurrent use.
type CartStore struct {
	cartRepo *repositories.CartRepository
	items    []models.CartLineItem
}

func NewCartStore(ctx context.Context, cartRepo *repositories.CartRepository) (*CartStore, error) {
	s := &CartStore{cartRepo: cartRepo, items: []models.CartLineItem{}}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory items with what storage holds.
func (s *CartStore) Reload(ctx context.Context) error {
	items, err := s.cartRepo.Load(ctx)
	if err != nil {
		return apperror.Wrap(apperror.CodeDependency, err, "failed to load cart")
	}
	s.items = items
	return nil
}

func (s *CartStore) Items() []models.CartLineItem {
	items := make([]models.CartLineItem, len(s.items))
	copy(items, s.items)
	return items
}

// AddItem increments the quantity of an existing line or appends a new
// line with quantity 1.
func (s *CartStore) AddItem(ctx context.Context, product models.Product) error {
	items := s.Items()
	if i := indexOf(items, product.ID); i >= 0 {
		items[i].Quantity++
	} else {
		items = append(items, models.CartLineItem{
			ID:       product.ID,
			Title:    product.Title,
			Price:    product.Price,
			Quantity: 1,
			ImageURL: product.ImageURL,
		})
	}
	return s.commit(ctx, items)
}

// UpdateQuantity sets the quantity of a line. A quantity below 1 removes
// the line; an unknown id is ignored.
func (s *CartStore) UpdateQuantity(ctx context.Context, id, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, id)
	}

	i := indexOf(s.items, id)
	if i < 0 {
		return nil
	}
	items := s.Items()
	items[i].Quantity = quantity
	return s.commit(ctx, items)
}

func (s *CartStore) RemoveItem(ctx context.Context, id int) error {
	i := indexOf(s.items, id)
	if i < 0 {
		return nil
	}
	items := make([]models.CartLineItem, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	return s.commit(ctx, items)
}

// Clear empties the cart and removes the cart key from storage.
func (s *CartStore) Clear(ctx context.Context) error {
	if err := s.cartRepo.Delete(ctx); err != nil {
		return apperror.Wrap(apperror.CodeDependency, err, "failed to clear cart")
	}
	s.items = []models.CartLineItem{}
	return nil
}

func (s *CartStore) Total() int {
	total := 0
	for _, item := range s.items {
		total += item.Price * item.Quantity
	}
	return total
}

func (s *CartStore) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *CartStore) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *CartStore) Summary() models.CartSummary {
	return models.CartSummary{
		Items:     s.Items(),
		Total:     s.Total(),
		ItemCount: s.ItemCount(),
	}
}

func (s *CartStore) commit(ctx context.Context, items []models.CartLineItem) error {
	if err := s.cartRepo.Save(ctx, items); err != nil {
		return apperror.Wrap(apperror.CodeDependency, err, "failed to save cart")
	}
	s.items = items
	return nil
}

func indexOf(items []models.CartLineItem, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
