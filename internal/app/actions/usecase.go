package actions

import (
	"context"
	"errors"
	"strings"
	"time"

	"moodpet/internal/app/ports"
	"moodpet/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid action request")

type UseCase struct {
	Pets ports.PetRepository
	Now  func() time.Time
}

// Execute runs one feed/play/train action: load the pet, apply the fixed
// formula, persist only the fields the action touches, then return the
// refreshed pet with the action's confirmation message. The read-modify-write
// is deliberately unguarded; concurrent actions on one pet are last-write-wins.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PetID) == "" || !req.Type.Valid() {
		return Response{}, ErrInvalidRequest
	}

	current, err := u.Pets.GetByID(ctx, req.PetID)
	if err != nil {
		return Response{}, err
	}

	now := u.Now().UTC()
	updated, err := pet.Apply(req.Type, current, now)
	if err != nil {
		return Response{}, err
	}

	if err := u.Pets.Patch(ctx, req.PetID, buildPatch(req.Type, current, updated)); err != nil {
		return Response{}, err
	}

	refreshed, err := u.Pets.GetByID(ctx, req.PetID)
	if err != nil {
		return Response{}, err
	}
	return Response{Message: pet.ActionMessages[req.Type], Pet: refreshed}, nil
}

// buildPatch writes the fields each action touches, nothing more, so
// concurrent actions only collide on the fields they share.
func buildPatch(action pet.ActionType, current, updated pet.Pet) ports.PetPatch {
	patch := ports.PetPatch{
		Happiness:  &updated.Happiness,
		Coins:      &updated.Coins,
		Experience: &updated.Experience,
	}
	switch action {
	case pet.ActionFeed:
		patch.Health = &updated.Health
		patch.LastFed = updated.LastFed
	case pet.ActionPlay:
		patch.LastPlayed = updated.LastPlayed
	case pet.ActionTrain:
		patch.Health = &updated.Health
		patch.LastTrained = updated.LastTrained
		if updated.Stage != current.Stage {
			patch.Stage = &updated.Stage
		}
	}
	return patch
}
