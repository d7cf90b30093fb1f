package actions

import "moodpet/internal/domain/pet"

type Request struct {
	PetID string
	Type  pet.ActionType
}

type Response struct {
	Message string  `json:"message"`
	Pet     pet.Pet `json:"pet"`
}
