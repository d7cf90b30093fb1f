package achievements

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"moodpet/internal/adapter/repo/memory"
)

func newFixture() UseCase {
	store := memory.NewStore()
	seq := 0
	return UseCase{
		Achievements: memory.NewAchievementRepo(store),
		NewID:        func() string { seq++; return fmt.Sprintf("ach-%d", seq) },
	}
}

func TestListByPet_SeedsLockedDefaults(t *testing.T) {
	uc := newFixture()

	records, err := uc.ListByPet(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("records = %d, want 5", len(records))
	}
	for _, record := range records {
		if record.PetID != "p-1" {
			t.Fatalf("record %q seeded for wrong pet %q", record.Name, record.PetID)
		}
		if record.Unlocked || record.UnlockedAt != nil {
			t.Fatalf("record %q seeded unlocked", record.Name)
		}
	}
}

func TestListByPet_SeedsPerPet(t *testing.T) {
	uc := newFixture()

	first, err := uc.ListByPet(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("list p-1: %v", err)
	}
	second, err := uc.ListByPet(context.Background(), "p-2")
	if err != nil {
		t.Fatalf("list p-2: %v", err)
	}
	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("sizes = (%d,%d), want (5,5)", len(first), len(second))
	}

	again, err := uc.ListByPet(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("relist p-1: %v", err)
	}
	if len(again) != 5 {
		t.Fatalf("re-read seeded duplicates: %d records", len(again))
	}
	for i := range first {
		if first[i].ID != again[i].ID {
			t.Fatalf("record %d changed identity between reads", i)
		}
	}
}

func TestListByPet_RejectsEmptyPetID(t *testing.T) {
	uc := newFixture()
	if _, err := uc.ListByPet(context.Background(), " "); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
