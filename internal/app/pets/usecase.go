package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"moodpet/internal/app/ports"
	"moodpet/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid pet request")

const maxPetList = 1000

type UseCase struct {
	Pets  ports.PetRepository
	NewID func() string
	Now   func() time.Time
}

func (u UseCase) Create(ctx context.Context, req CreateRequest) (pet.Pet, error) {
	p := pet.New(u.NewID(), strings.TrimSpace(req.Name), u.Now().UTC())
	if err := u.Pets.Insert(ctx, p); err != nil {
		return pet.Pet{}, err
	}
	return p, nil
}

func (u UseCase) Get(ctx context.Context, petID string) (pet.Pet, error) {
	if strings.TrimSpace(petID) == "" {
		return pet.Pet{}, ErrInvalidRequest
	}
	return u.Pets.GetByID(ctx, petID)
}

func (u UseCase) List(ctx context.Context) ([]pet.Pet, error) {
	return u.Pets.List(ctx, maxPetList)
}

// Update writes the provided fields as-is and returns the refreshed pet.
// A missing pet surfaces as not found from the re-read, the same way the
// raw route behaves: the blind patch itself is not an error.
func (u UseCase) Update(ctx context.Context, petID string, req UpdateRequest) (pet.Pet, error) {
	if strings.TrimSpace(petID) == "" {
		return pet.Pet{}, ErrInvalidRequest
	}
	patch := ports.PetPatch{
		Name:      req.Name,
		Happiness: req.Happiness,
		Health:    req.Health,
		Coins:     req.Coins,
	}
	if !patch.Empty() {
		if err := u.Pets.Patch(ctx, petID, patch); err != nil {
			return pet.Pet{}, err
		}
	}
	return u.Pets.GetByID(ctx, petID)
}
