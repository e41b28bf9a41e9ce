package redis_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"

	"catalog/internal/item"
	"catalog/internal/item/repository"
	itemRedis "catalog/internal/item/repository/redis"
	"catalog/pkg/log"
)

func newRepo(t *testing.T) (repository.Repository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return itemRedis.New(client, log.NewNop()), srv
}

func sampleItem(id, name string) item.Item {
	return item.Item{
		ID:          id,
		Name:        name,
		Description: "restores HP",
		Price:       10,
		CreatedDate: time.Date(2024, 5, 1, 15, 30, 0, 123_000_000, time.UTC),
	}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create then get round-trips", func(t *testing.T) {
		r, _ := newRepo(t)
		want := sampleItem("a", "Potion")
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
		r, _ := newRepo(t)
		got, found, err := r.GetItem(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found || got != (item.Item{}) {
			t.Errorf("expected zero item and found=false, got %+v found=%v", got, found)
		}
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		r, _ := newRepo(t)
		if err := r.CreateItem(ctx, sampleItem("a", "Potion")); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		if err := r.CreateItem(ctx, sampleItem("a", "Ether")); !errors.Is(err, repository.ErrDuplicateID) {
			t.Fatalf("expected ErrDuplicateID, got %v", err)
		}
		got, _, _ := r.GetItem(ctx, "a")
		if got.Name != "Potion" {
			t.Errorf("duplicate create overwrote the item: %+v", got)
		}
	})

	t.Run("list filters by name ignoring case", func(t *testing.T) {
		r, _ := newRepo(t)
		for i, name := range []string{"Potion", "Antidote", "Hi-Potion"} {
			if err := r.CreateItem(ctx, sampleItem(string(rune('a'+i)), name)); err != nil {
				t.Fatalf("CreateItem: %v", err)
			}
		}

		all, err := r.GetItems(ctx, repository.Filter{})
		if err != nil || len(all) != 3 {
			t.Fatalf("GetItems: %d items, err=%v", len(all), err)
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
			t.Errorf("unexpected names %v", names)
		}
	})

	t.Run("empty store lists an empty slice", func(t *testing.T) {
		r, _ := newRepo(t)
		got, err := r.GetItems(ctx, repository.Filter{})
		if err != nil {
			t.Fatalf("GetItems: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("update replaces the stored record", func(t *testing.T) {
		r, _ := newRepo(t)
		orig := sampleItem("a", "Potion")
		if err := r.CreateItem(ctx, orig); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		want := orig
		want.Name, want.Description, want.Price = "Hi-Potion", "", 75
		if err := r.UpdateItem(ctx, want); err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}
		got, _, _ := r.GetItem(ctx, "a")
		if got != want {
			t.Errorf("GetItem = %+v, want %+v", got, want)
		}
	})

	t.Run("update of missing id writes nothing", func(t *testing.T) {
		r, srv := newRepo(t)
		if err := r.UpdateItem(ctx, sampleItem("ghost", "Potion")); err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}
		if srv.Exists("item:ghost") {
			t.Error("update created a record")
		}
		if _, found, _ := r.GetItem(ctx, "ghost"); found {
			t.Error("update of missing id made it visible")
		}
	})

	t.Run("delete removes value and index entry", func(t *testing.T) {
		r, srv := newRepo(t)
		if err := r.CreateItem(ctx, sampleItem("a", "Potion")); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		if err := r.DeleteItem(ctx, "a"); err != nil {
			t.Fatalf("DeleteItem: %v", err)
		}
		if err := r.DeleteItem(ctx, "a"); err != nil {
			t.Fatalf("second DeleteItem: %v", err)
		}
		if _, found, _ := r.GetItem(ctx, "a"); found {
			t.Error("item still present")
		}
		if ok, _ := srv.SIsMember("items", "a"); ok {
			t.Error("id left in the items set")
		}
	})

	t.Run("ping reports an unreachable server", func(t *testing.T) {
		r, srv := newRepo(t)
		if err := r.Ping(ctx); err != nil {
			t.Fatalf("Ping: %v", err)
		}
		srv.Close()
		if err := r.Ping(ctx); !errors.Is(err, repository.ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		r, srv := newRepo(t)
		srv.Close()
		if _, _, err := r.GetItem(ctx, "a"); !errors.Is(err, repository.ErrFailedToGet) {
			t.Errorf("GetItem: expected ErrFailedToGet, got %v", err)
		}
		if err := r.CreateItem(ctx, sampleItem("a", "Potion")); !errors.Is(err, repository.ErrFailedToInsert) {
			t.Errorf("CreateItem: expected ErrFailedToInsert, got %v", err)
		}
	})
}
