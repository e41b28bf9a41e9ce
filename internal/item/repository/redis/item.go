package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

// GetItem retrieves a single Item by id. A miss is (zero, false, nil).
func (r *implRepository) GetItem(ctx context.Context, id string) (item.Item, bool, error) {
	data, err := r.client.Get(ctx, itemKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return item.Item{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return item.Item{}, false, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	it, err := decodeItem(data)
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetItem"), err)
		return item.Item{}, false, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return it, true, nil
}

// GetItems loads every indexed item and applies f in process;
// Redis has no server-side substring match over values.
func (r *implRepository) GetItems(ctx context.Context, f repo.Filter) ([]item.Item, error) {
	ids, err := r.client.SMembers(ctx, itemsSetKey).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	if len(ids) == 0 {
		return []item.Item{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s mget: %v", r.dsn("GetItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	items := make([]item.Item, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// deleted between SMEMBERS and MGET
			continue
		}
		it, err := decodeItem([]byte(s))
		if err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetItems"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		if f.Match(it) {
			items = append(items, it)
		}
	}
	return items, nil
}

// CreateItem stores it only if no value exists under its key yet.
func (r *implRepository) CreateItem(ctx context.Context, it item.Item) error {
	data, err := encodeItem(it)
	if err != nil {
		return fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	var setNX *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		setNX = pipe.SetNX(ctx, itemKey(it.ID), data, 0)
		pipe.SAdd(ctx, itemsSetKey, it.ID)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	if !setNX.Val() {
		return repo.ErrDuplicateID
	}
	return nil
}

// UpdateItem overwrites the value under it.ID only if it already exists.
func (r *implRepository) UpdateItem(ctx context.Context, it item.Item) error {
	data, err := encodeItem(it)
	if err != nil {
		return fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	if err := r.client.SetXX(ctx, itemKey(it.ID), data, 0).Err(); err != nil && !errors.Is(err, redis.Nil) {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	return nil
}

// DeleteItem removes the value and its index entry.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, itemKey(id))
		pipe.SRem(ctx, itemsSetKey, id)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", repo.ErrUnavailable, err)
	}
	return nil
}
