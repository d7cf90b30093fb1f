package gormrepo

import (
	"context"

	"moodpet/internal/adapter/repo/gorm/model"
	"moodpet/internal/domain/pet"

	"gorm.io/gorm"
)

type AchievementRepo struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) AchievementRepo {
	return AchievementRepo{db: db}
}

func (r AchievementRepo) Insert(ctx context.Context, a pet.Achievement) error {
	row := model.Achievement{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		Unlocked:    a.Unlocked,
		UnlockedAt:  formatTimePtr(a.UnlockedAt),
		PetID:       a.PetID,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r AchievementRepo) ListByPetID(ctx context.Context, petID string, limit int) ([]pet.Achievement, error) {
	rows := []model.Achievement{}
	query := r.db.WithContext(ctx).Where("pet_id = ?", petID)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]pet.Achievement, 0, len(rows))
	for _, row := range rows {
		out = append(out, pet.Achievement{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Icon:        row.Icon,
			Unlocked:    row.Unlocked,
			UnlockedAt:  parseTimePtr(row.UnlockedAt),
			PetID:       row.PetID,
		})
	}
	return out, nil
}
