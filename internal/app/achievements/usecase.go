package achievements

import (
	"context"
	"errors"
	"strings"

	"moodpet/internal/app/ports"
	"moodpet/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid achievements request")

const maxAchievements = 100

type UseCase struct {
	Achievements ports.AchievementRepository
	NewID        func() string
}

// ListByPet returns a pet's achievement records, seeding the fixed default
// set (all locked) on first read. No pet existence check is made, so asking
// for an unknown pet ID seeds and returns records for it; nothing here
// evaluates unlock conditions.
func (u UseCase) ListByPet(ctx context.Context, petID string) ([]pet.Achievement, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidRequest
	}

	records, err := u.Achievements.ListByPetID(ctx, petID, maxAchievements)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		return records, nil
	}

	for _, seed := range pet.DefaultAchievements() {
		record := pet.Achievement{
			ID:          u.NewID(),
			Name:        seed.Name,
			Description: seed.Description,
			Icon:        seed.Icon,
			PetID:       petID,
		}
		if err := u.Achievements.Insert(ctx, record); err != nil {
			return nil, err
		}
	}
	return u.Achievements.ListByPetID(ctx, petID, maxAchievements)
}
