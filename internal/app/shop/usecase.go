package shop

import (
	"context"

	"moodpet/internal/app/ports"
	"moodpet/internal/domain/pet"
)

const maxCatalogItems = 100

type UseCase struct {
	Items ports.ShopItemRepository
	NewID func() string
}

// Catalog returns the shop items, seeding the fixed default set on first
// read of an empty store. The check-then-insert is not deduplicated across
// concurrent first reads; a populated store is never re-seeded.
func (u UseCase) Catalog(ctx context.Context) ([]pet.ShopItem, error) {
	items, err := u.Items.List(ctx, maxCatalogItems)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	for _, seed := range pet.DefaultShopItems() {
		item := pet.ShopItem{
			ID:          u.NewID(),
			Name:        seed.Name,
			Description: seed.Description,
			Price:       seed.Price,
			Category:    seed.Category,
			Icon:        seed.Icon,
		}
		if err := u.Items.Insert(ctx, item); err != nil {
			return nil, err
		}
	}
	return u.Items.List(ctx, maxCatalogItems)
}
