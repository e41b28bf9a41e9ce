package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	repo "catalog/internal/item/repository"
)

func TestBuildListFilter(t *testing.T) {
	t.Run("empty filter matches all", func(t *testing.T) {
		if got := buildListFilter(repo.Filter{}); len(got) != 0 {
			t.Errorf("expected empty filter document, got %v", got)
		}
	})

	t.Run("name is case-insensitive escaped regex", func(t *testing.T) {
		got := buildListFilter(repo.Filter{NameContains: "Hi-Potion (L)"})
		if len(got) != 1 || got[0].Key != "name" {
			t.Fatalf("unexpected filter document: %v", got)
		}
		re, ok := got[0].Value.(primitive.Regex)
		if !ok {
			t.Fatalf("expected primitive.Regex, got %T", got[0].Value)
		}
		if re.Pattern != `Hi-Potion \(L\)` {
			t.Errorf("unexpected pattern %q", re.Pattern)
		}
		if re.Options != "i" {
			t.Errorf("expected case-insensitive option, got %q", re.Options)
		}
	})
}

func TestByID(t *testing.T) {
	got := byID("abc")
	if len(got) != 1 || got[0].Key != "_id" || got[0].Value != "abc" {
		t.Errorf("unexpected id filter: %v", got)
	}
}
