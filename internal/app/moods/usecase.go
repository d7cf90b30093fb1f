package moods

import (
	"context"
	"errors"
	"strings"
	"time"

	"moodpet/internal/app/ports"
	"moodpet/internal/domain/pet"
)

var (
	ErrInvalidRequest   = errors.New("invalid mood request")
	ErrInvalidEmotion   = errors.New("invalid emotion")
	ErrInvalidIntensity = errors.New("intensity out of range")
)

const maxMoodEntries = 100

type UseCase struct {
	Moods ports.MoodEntryRepository
	Pets  ports.PetRepository
	NewID func() string
	Now   func() time.Time
}

// Log validates the payload, records the entry, and applies the mood's
// stat effect to the owning pet. The entry is written unconditionally:
// a pet that does not exist gets no stat change but the entry still lands
// and no error is returned.
func (u UseCase) Log(ctx context.Context, req LogRequest) (pet.MoodEntry, error) {
	if strings.TrimSpace(req.PetID) == "" {
		return pet.MoodEntry{}, ErrInvalidRequest
	}
	if !req.Emotion.Valid() {
		return pet.MoodEntry{}, ErrInvalidEmotion
	}
	intensity := pet.DefaultIntensity
	if req.Intensity != nil {
		intensity = *req.Intensity
		if intensity < pet.MinIntensity || intensity > pet.MaxIntensity {
			return pet.MoodEntry{}, ErrInvalidIntensity
		}
	}

	entry := pet.MoodEntry{
		ID:        u.NewID(),
		Emotion:   req.Emotion,
		Intensity: intensity,
		Note:      req.Note,
		Timestamp: u.Now().UTC(),
		PetID:     req.PetID,
	}
	if err := u.Moods.Insert(ctx, entry); err != nil {
		return pet.MoodEntry{}, err
	}

	owner, err := u.Pets.GetByID(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return entry, nil
		}
		return pet.MoodEntry{}, err
	}

	effect := pet.ResolveMoodEffect(entry.Emotion, entry.Intensity)
	happiness := pet.ApplyMoodEffect(owner, effect)
	err = u.Pets.Patch(ctx, owner.ID, ports.PetPatch{
		Happiness:       &happiness,
		CoinsDelta:      effect.CoinsEarned,
		ExperienceDelta: effect.ExperienceGained,
	})
	if err != nil {
		return pet.MoodEntry{}, err
	}
	return entry, nil
}

// ListByPet returns a pet's entries, newest first. An unknown pet yields an
// empty list, not an error.
func (u UseCase) ListByPet(ctx context.Context, petID string) ([]pet.MoodEntry, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrInvalidRequest
	}
	return u.Moods.ListByPetID(ctx, petID, maxMoodEntries)
}
