package gormrepo

import (
	"context"
	"errors"

	"moodpet/internal/adapter/repo/gorm/model"
	"moodpet/internal/app/ports"
	"moodpet/internal/domain/pet"

	"gorm.io/gorm"
)

type PetRepo struct {
	db *gorm.DB
}

func NewPetRepo(db *gorm.DB) PetRepo {
	return PetRepo{db: db}
}

func (r PetRepo) Insert(ctx context.Context, p pet.Pet) error {
	row := model.Pet{
		ID:          p.ID,
		Name:        p.Name,
		Stage:       string(p.Stage),
		Happiness:   int32(p.Happiness),
		Health:      int32(p.Health),
		Coins:       int32(p.Coins),
		Experience:  int32(p.Experience),
		LastFed:     formatTimePtr(p.LastFed),
		LastPlayed:  formatTimePtr(p.LastPlayed),
		LastTrained: formatTimePtr(p.LastTrained),
		CreatedAt:   formatTime(p.CreatedAt),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r PetRepo) GetByID(ctx context.Context, id string) (pet.Pet, error) {
	var row model.Pet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pet.Pet{}, ports.ErrNotFound
		}
		return pet.Pet{}, err
	}
	return toDomainPet(row), nil
}

func (r PetRepo) List(ctx context.Context, limit int) ([]pet.Pet, error) {
	rows := []model.Pet{}
	query := r.db.WithContext(ctx).Order("created_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]pet.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainPet(row))
	}
	return out, nil
}

// Patch issues one partial UPDATE. Set fields overwrite, delta fields are
// applied in SQL so concurrent mood logs never lose increments. A missing
// row is not an error; the write lands on nothing.
func (r PetRepo) Patch(ctx context.Context, id string, patch ports.PetPatch) error {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Stage != nil {
		updates["stage"] = string(*patch.Stage)
	}
	if patch.Happiness != nil {
		updates["happiness"] = int32(*patch.Happiness)
	}
	if patch.Health != nil {
		updates["health"] = int32(*patch.Health)
	}
	if patch.Coins != nil {
		updates["coins"] = int32(*patch.Coins)
	}
	if patch.Experience != nil {
		updates["experience"] = int32(*patch.Experience)
	}
	if patch.LastFed != nil {
		updates["last_fed"] = formatTimePtr(patch.LastFed)
	}
	if patch.LastPlayed != nil {
		updates["last_played"] = formatTimePtr(patch.LastPlayed)
	}
	if patch.LastTrained != nil {
		updates["last_trained"] = formatTimePtr(patch.LastTrained)
	}
	if patch.CoinsDelta != 0 {
		updates["coins"] = gorm.Expr("coins + ?", patch.CoinsDelta)
	}
	if patch.ExperienceDelta != 0 {
		updates["experience"] = gorm.Expr("experience + ?", patch.ExperienceDelta)
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Pet{}).Where("id = ?", id).Updates(updates).Error
}

func toDomainPet(row model.Pet) pet.Pet {
	return pet.Pet{
		ID:          row.ID,
		Name:        row.Name,
		Stage:       pet.Stage(row.Stage),
		Happiness:   int(row.Happiness),
		Health:      int(row.Health),
		Coins:       int(row.Coins),
		Experience:  int(row.Experience),
		LastFed:     parseTimePtr(row.LastFed),
		LastPlayed:  parseTimePtr(row.LastPlayed),
		LastTrained: parseTimePtr(row.LastTrained),
		CreatedAt:   parseTime(row.CreatedAt),
	}
}
