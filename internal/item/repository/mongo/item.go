package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"catalog/internal/item"
	repo "catalog/internal/item/repository"
)

// GetItem retrieves a single Item by id. A miss is (zero, false, nil).
func (r *implRepository) GetItem(ctx context.Context, id string) (item.Item, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc itemDocument
	err := r.coll.FindOne(ctx, byID(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return item.Item{}, false, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return doc.toItem(), true, nil
}

// GetItems returns all Items matching f, fully materialized.
func (r *implRepository) GetItems(ctx context.Context, f repo.Filter) ([]item.Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(ctx, buildListFilter(f))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	var docs []itemDocument
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetItems"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	items := make([]item.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toItem())
	}
	return items, nil
}

// CreateItem inserts a new document keyed by it.ID.
func (r *implRepository) CreateItem(ctx context.Context, it item.Item) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toDocument(it)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repo.ErrDuplicateID
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return nil
}

// UpdateItem replaces the document with it.ID.
func (r *implRepository) UpdateItem(ctx context.Context, it item.Item) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.ReplaceOne(ctx, byID(it.ID), toDocument(it)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	return nil
}

// DeleteItem removes the document with id, if any.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, byID(id)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}

// Ping checks the primary is reachable.
func (r *implRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", repo.ErrUnavailable, err)
	}
	return nil
}
