package memory

import (
	"sync"

	"moodpet/internal/domain/pet"
)

// Store backs the in-memory repos used by tests and local runs.
type Store struct {
	mu           sync.RWMutex
	pets         map[string]pet.Pet
	petOrder     []string
	moods        []pet.MoodEntry
	achievements []pet.Achievement
	shopItems    []pet.ShopItem
}

func NewStore() *Store {
	return &Store{
		pets: make(map[string]pet.Pet),
	}
}

func (s *Store) SeedPet(p pet.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pets[p.ID]; !ok {
		s.petOrder = append(s.petOrder, p.ID)
	}
	s.pets[p.ID] = p
}
