package item_test

import (
	"testing"
	"time"

	"catalog/internal/item"
)

func TestMerge(t *testing.T) {
	created := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	existing := item.Item{
		ID:          "id-1",
		Name:        "Elixir",
		Description: "restores everything",
		Price:       50,
		CreatedDate: created,
	}

	t.Run("replaces mutable fields", func(t *testing.T) {
		got := item.Merge(existing, item.UpdateItemInput{
			ID:          "id-1",
			Name:        "Megalixir",
			Description: "restores the party",
			Price:       75,
		})
		want := item.Item{
			ID:          "id-1",
			Name:        "Megalixir",
			Description: "restores the party",
			Price:       75,
			CreatedDate: created,
		}
		if got != want {
			t.Errorf("Merge() = %+v, want %+v", got, want)
		}
	})

	t.Run("keeps identity and creation date", func(t *testing.T) {
		got := item.Merge(existing, item.UpdateItemInput{ID: "someone-else", Name: "Elixir", Price: 75})
		if got.ID != "id-1" {
			t.Errorf("ID changed to %q", got.ID)
		}
		if !got.CreatedDate.Equal(created) {
			t.Errorf("CreatedDate changed to %v", got.CreatedDate)
		}
	})

	t.Run("omitted description clears it", func(t *testing.T) {
		got := item.Merge(existing, item.UpdateItemInput{Name: "Elixir", Price: 75})
		if got.Description != "" {
			t.Errorf("expected description cleared, got %q", got.Description)
		}
	})

	t.Run("does not mutate existing", func(t *testing.T) {
		before := existing
		_ = item.Merge(existing, item.UpdateItemInput{Name: "X", Price: 1})
		if existing != before {
			t.Errorf("existing was mutated: %+v", existing)
		}
	})
}
