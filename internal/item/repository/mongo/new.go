package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"catalog/internal/item/repository"
	"catalog/pkg/log"
)

const defaultCollection = "items"

type implRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
	l       log.Logger
}

// New creates a MongoDB-backed Repository over db.<collection>.
// timeout bounds every store call; zero leaves the caller's deadline alone.
func New(db *mongo.Database, collection string, timeout time.Duration, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/mongo: db is required")
	}
	if collection == "" {
		collection = defaultCollection
	}
	return &implRepository{
		coll:    db.Collection(collection),
		timeout: timeout,
		l:       l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongo.%s", method)
}

func (r *implRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}
