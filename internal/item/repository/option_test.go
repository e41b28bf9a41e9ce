package repository_test

import (
	"testing"

	"catalog/internal/item"
	"catalog/internal/item/repository"
)

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		name   string
		filter repository.Filter
		item   string
		want   bool
	}{
		{"empty matches all", repository.Filter{}, "Antidote", true},
		{"exact", repository.Filter{NameContains: "Potion"}, "Potion", true},
		{"substring", repository.Filter{NameContains: "Potion"}, "Hi-Potion", true},
		{"case insensitive", repository.Filter{NameContains: "potion"}, "Hi-POTION", true},
		{"no match", repository.Filter{NameContains: "Potion"}, "Antidote", false},
		{"regex chars are literal", repository.Filter{NameContains: ".*"}, "Potion", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(item.Item{Name: tt.item}); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.item, got, tt.want)
			}
		})
	}
}
