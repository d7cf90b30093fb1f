package memory

import (
	"context"

	"moodpet/internal/domain/pet"
)

type AchievementRepo struct {
	store *Store
}

func NewAchievementRepo(store *Store) AchievementRepo {
	return AchievementRepo{store: store}
}

func (r AchievementRepo) Insert(_ context.Context, a pet.Achievement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.achievements = append(r.store.achievements, a)
	return nil
}

func (r AchievementRepo) ListByPetID(_ context.Context, petID string, limit int) ([]pet.Achievement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]pet.Achievement, 0)
	for _, a := range r.store.achievements {
		if a.PetID != petID {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, a)
	}
	return out, nil
}
