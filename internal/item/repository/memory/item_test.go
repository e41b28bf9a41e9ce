package memory_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"catalog/internal/item"
	"catalog/internal/item/repository"
	"catalog/internal/item/repository/memory"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	created := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("create then get round-trips", func(t *testing.T) {
		r := memory.New()
		want := item.Item{ID: "a", Name: "Elixir", Description: "full heal", Price: 50, CreatedDate: created}
		if err := r.CreateItem(ctx, want); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		got, found, err := r.GetItem(ctx, "a")
		if err != nil || !found {
			t.Fatalf("GetItem: found=%v err=%v", found, err)
		}
		if got != want {
			t.Errorf("GetItem = %+v, want %+v", got, want)
		}
	})

	t.Run("missing id is absence, not error", func(t *testing.T) {
		r := memory.New()
		_, found, err := r.GetItem(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Errorf("expected not found")
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		r := memory.New()
		it := item.Item{ID: "a", Name: "Elixir", Price: 50}
		_ = r.CreateItem(ctx, it)
		if err := r.CreateItem(ctx, it); !errors.Is(err, repository.ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("update replaces record", func(t *testing.T) {
		r := memory.New()
		_ = r.CreateItem(ctx, item.Item{ID: "a", Name: "Elixir", Description: "old", Price: 50, CreatedDate: created})
		if err := r.UpdateItem(ctx, item.Item{ID: "a", Name: "Elixir", Price: 75, CreatedDate: created}); err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}
		got, _, _ := r.GetItem(ctx, "a")
		if got.Price != 75 || got.Description != "" || !got.CreatedDate.Equal(created) {
			t.Errorf("unexpected record after update: %+v", got)
		}
	})

	t.Run("delete twice is a no-op", func(t *testing.T) {
		r := memory.New()
		_ = r.CreateItem(ctx, item.Item{ID: "a", Name: "Elixir", Price: 50})
		if err := r.DeleteItem(ctx, "a"); err != nil {
			t.Fatalf("first delete: %v", err)
		}
		if err := r.DeleteItem(ctx, "a"); err != nil {
			t.Fatalf("second delete: %v", err)
		}
		if _, found, _ := r.GetItem(ctx, "a"); found {
			t.Errorf("expected item gone")
		}
	})

	t.Run("name filter", func(t *testing.T) {
		r := memory.New()
		for i, name := range []string{"Potion", "Antidote", "Hi-Potion"} {
			_ = r.CreateItem(ctx, item.Item{ID: string(rune('a' + i)), Name: name, Price: 10})
		}

		all, err := r.GetItems(ctx, repository.Filter{})
		if err != nil {
			t.Fatalf("GetItems: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("expected 3 items, got %d", len(all))
		}

		got, err := r.GetItems(ctx, repository.Filter{NameContains: "potion"})
		if err != nil {
			t.Fatalf("GetItems: %v", err)
		}
		var names []string
		for _, it := range got {
			names = append(names, it.Name)
		}
		sort.Strings(names)
		if len(names) != 2 || names[0] != "Hi-Potion" || names[1] != "Potion" {
			t.Errorf("unexpected filtered names: %v", names)
		}
	})

	t.Run("empty store returns empty slice", func(t *testing.T) {
		r := memory.New()
		items, err := r.GetItems(ctx, repository.Filter{})
		if err != nil {
			t.Fatalf("GetItems: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", items)
		}
	})
}
