package memory

import (
	"context"
	"sort"

	"moodpet/internal/domain/pet"
)

type MoodEntryRepo struct {
	store *Store
}

func NewMoodEntryRepo(store *Store) MoodEntryRepo {
	return MoodEntryRepo{store: store}
}

func (r MoodEntryRepo) Insert(_ context.Context, entry pet.MoodEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.moods = append(r.store.moods, entry)
	return nil
}

func (r MoodEntryRepo) ListByPetID(_ context.Context, petID string, limit int) ([]pet.MoodEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]pet.MoodEntry, 0)
	for _, entry := range r.store.moods {
		if entry.PetID == petID {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
