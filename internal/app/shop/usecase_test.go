package shop

import (
	"context"
	"fmt"
	"testing"

	"moodpet/internal/adapter/repo/memory"
)

func newFixture() UseCase {
	store := memory.NewStore()
	seq := 0
	return UseCase{
		Items: memory.NewShopItemRepo(store),
		NewID: func() string { seq++; return fmt.Sprintf("item-%d", seq) },
	}
}

func TestCatalog_SeedsDefaultsOnFirstRead(t *testing.T) {
	uc := newFixture()

	items, err := uc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("items = %d, want 5", len(items))
	}
	names := map[string]bool{}
	for _, item := range items {
		if item.ID == "" {
			t.Fatalf("item %q missing id", item.Name)
		}
		names[item.Name] = true
	}
	for _, want := range []string{"Premium Food", "Toy Ball", "Training Weights", "Sparkle Background", "Rainbow Collar"} {
		if !names[want] {
			t.Fatalf("missing default item %q", want)
		}
	}
}

func TestCatalog_SecondReadDoesNotReseed(t *testing.T) {
	uc := newFixture()

	first, err := uc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("first catalog: %v", err)
	}
	second, err := uc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("second catalog: %v", err)
	}
	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("catalog sizes = (%d,%d), want (5,5)", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("item %d changed identity between reads", i)
		}
	}
}
