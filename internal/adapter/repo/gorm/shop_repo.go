package gormrepo

import (
	"context"

	"moodpet/internal/adapter/repo/gorm/model"
	"moodpet/internal/domain/pet"

	"gorm.io/gorm"
)

type ShopItemRepo struct {
	db *gorm.DB
}

func NewShopItemRepo(db *gorm.DB) ShopItemRepo {
	return ShopItemRepo{db: db}
}

func (r ShopItemRepo) Insert(ctx context.Context, item pet.ShopItem) error {
	row := model.ShopItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       int32(item.Price),
		Category:    item.Category,
		Icon:        item.Icon,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r ShopItemRepo) List(ctx context.Context, limit int) ([]pet.ShopItem, error) {
	rows := []model.ShopItem{}
	query := r.db.WithContext(ctx)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]pet.ShopItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, pet.ShopItem{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Price:       int(row.Price),
			Category:    row.Category,
			Icon:        row.Icon,
		})
	}
	return out, nil
}
