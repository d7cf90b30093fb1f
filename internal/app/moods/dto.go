package moods

import "moodpet/internal/domain/pet"

// LogRequest carries a mood entry to record. A nil Intensity takes the
// default; a present value must already be within bounds.
type LogRequest struct {
	PetID     string
	Emotion   pet.Emotion
	Intensity *int
	Note      string
}
