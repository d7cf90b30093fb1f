package ports

import (
	"context"
	"time"

	"moodpet/internal/domain/pet"
)

// PetPatch is a partial-field update: pointer fields are written when
// non-nil, delta fields are applied as store-level atomic increments.
// Writes are last-write-wins per field set; there is no version token.
type PetPatch struct {
	Name        *string
	Stage       *pet.Stage
	Happiness   *int
	Health      *int
	Coins       *int
	Experience  *int
	LastFed     *time.Time
	LastPlayed  *time.Time
	LastTrained *time.Time

	CoinsDelta      int
	ExperienceDelta int
}

// Empty reports whether the patch carries no writes at all.
func (p PetPatch) Empty() bool {
	return p.Name == nil && p.Stage == nil && p.Happiness == nil && p.Health == nil &&
		p.Coins == nil && p.Experience == nil && p.LastFed == nil && p.LastPlayed == nil &&
		p.LastTrained == nil && p.CoinsDelta == 0 && p.ExperienceDelta == 0
}

type PetRepository interface {
	Insert(ctx context.Context, p pet.Pet) error
	GetByID(ctx context.Context, id string) (pet.Pet, error)
	List(ctx context.Context, limit int) ([]pet.Pet, error)
	Patch(ctx context.Context, id string, patch PetPatch) error
}

type MoodEntryRepository interface {
	Insert(ctx context.Context, entry pet.MoodEntry) error
	ListByPetID(ctx context.Context, petID string, limit int) ([]pet.MoodEntry, error)
}

type AchievementRepository interface {
	Insert(ctx context.Context, a pet.Achievement) error
	ListByPetID(ctx context.Context, petID string, limit int) ([]pet.Achievement, error)
}

type ShopItemRepository interface {
	Insert(ctx context.Context, item pet.ShopItem) error
	List(ctx context.Context, limit int) ([]pet.ShopItem, error)
}
