package repository

import (
	"context"

	"catalog/internal/item"
)

// Repository is the only component allowed to talk to the backing store.
type Repository interface {
	ItemRepository

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	// GetItem returns found == false (and no error) when nothing has the id.
	GetItem(ctx context.Context, id string) (it item.Item, found bool, err error)
	// GetItems returns every item matching f. The slice is never nil.
	GetItems(ctx context.Context, f Filter) ([]item.Item, error)
	// CreateItem persists it with its caller-assigned ID.
	CreateItem(ctx context.Context, it item.Item) error
	// UpdateItem replaces the stored record with ID it.ID wholesale.
	UpdateItem(ctx context.Context, it item.Item) error
	// DeleteItem removes the record; missing ids are a no-op.
	DeleteItem(ctx context.Context, id string) error
}
