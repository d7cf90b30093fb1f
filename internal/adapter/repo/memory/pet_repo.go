package memory

import (
	"context"

	"moodpet/internal/app/ports"
	"moodpet/internal/domain/pet"
)

type PetRepo struct {
	store *Store
}

func NewPetRepo(store *Store) PetRepo {
	return PetRepo{store: store}
}

func (r PetRepo) Insert(_ context.Context, p pet.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.pets[p.ID]; !ok {
		r.store.petOrder = append(r.store.petOrder, p.ID)
	}
	r.store.pets[p.ID] = p
	return nil
}

func (r PetRepo) GetByID(_ context.Context, id string) (pet.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.pets[id]
	if !ok {
		return pet.Pet{}, ports.ErrNotFound
	}
	return p, nil
}

func (r PetRepo) List(_ context.Context, limit int) ([]pet.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]pet.Pet, 0, len(r.store.petOrder))
	for _, id := range r.store.petOrder {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, r.store.pets[id])
	}
	return out, nil
}

// Patch applies a partial update. A missing pet is not an error: the blind
// write simply lands on nothing, like an update against an absent row.
func (r PetRepo) Patch(_ context.Context, id string, patch ports.PetPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.pets[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Stage != nil {
		p.Stage = *patch.Stage
	}
	if patch.Happiness != nil {
		p.Happiness = *patch.Happiness
	}
	if patch.Health != nil {
		p.Health = *patch.Health
	}
	if patch.Coins != nil {
		p.Coins = *patch.Coins
	}
	if patch.Experience != nil {
		p.Experience = *patch.Experience
	}
	if patch.LastFed != nil {
		p.LastFed = patch.LastFed
	}
	if patch.LastPlayed != nil {
		p.LastPlayed = patch.LastPlayed
	}
	if patch.LastTrained != nil {
		p.LastTrained = patch.LastTrained
	}
	p.Coins += patch.CoinsDelta
	p.Experience += patch.ExperienceDelta
	r.store.pets[id] = p
	return nil
}
