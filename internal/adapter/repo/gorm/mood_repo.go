package gormrepo

import (
	"context"

	"moodpet/internal/adapter/repo/gorm/model"
	"moodpet/internal/domain/pet"

	"gorm.io/gorm"
)

type MoodEntryRepo struct {
	db *gorm.DB
}

func NewMoodEntryRepo(db *gorm.DB) MoodEntryRepo {
	return MoodEntryRepo{db: db}
}

func (r MoodEntryRepo) Insert(ctx context.Context, entry pet.MoodEntry) error {
	row := model.MoodEntry{
		ID:        entry.ID,
		Emotion:   string(entry.Emotion),
		Intensity: int32(entry.Intensity),
		Note:      entry.Note,
		Timestamp: formatTime(entry.Timestamp),
		PetID:     entry.PetID,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// ListByPetID returns entries newest first. The fixed-width timestamp
// encoding makes the string ordering chronological.
func (r MoodEntryRepo) ListByPetID(ctx context.Context, petID string, limit int) ([]pet.MoodEntry, error) {
	rows := []model.MoodEntry{}
	query := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]pet.MoodEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, pet.MoodEntry{
			ID:        row.ID,
			Emotion:   pet.Emotion(row.Emotion),
			Intensity: int(row.Intensity),
			Note:      row.Note,
			Timestamp: parseTime(row.Timestamp),
			PetID:     row.PetID,
		})
	}
	return out, nil
}
