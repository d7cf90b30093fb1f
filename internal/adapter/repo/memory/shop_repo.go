package memory

import (
	"context"

	"moodpet/internal/domain/pet"
)

type ShopItemRepo struct {
	store *Store
}

func NewShopItemRepo(store *Store) ShopItemRepo {
	return ShopItemRepo{store: store}
}

func (r ShopItemRepo) Insert(_ context.Context, item pet.ShopItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.shopItems = append(r.store.shopItems, item)
	return nil
}

func (r ShopItemRepo) List(_ context.Context, limit int) ([]pet.ShopItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]pet.ShopItem, 0, len(r.store.shopItems))
	for _, item := range r.store.shopItems {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, item)
	}
	return out, nil
}
