package memory

import (
	"context"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

func (r *implRepository) GetItem(ctx context.Context, id string) (item.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	return it, ok, nil
}

func (r *implRepository) GetItems(ctx context.Context, f repo.Filter) ([]item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]item.Item, 0, len(r.items))
	for _, it := range r.items {
		if f.Match(it) {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *implRepository) CreateItem(ctx context.Context, it item.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; ok {
		return repo.ErrDuplicateID
	}
	r.items[it.ID] = it
	return nil
}

func (r *implRepository) UpdateItem(ctx context.Context, it item.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; ok {
		r.items[it.ID] = it
	}
	return nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return nil
}
