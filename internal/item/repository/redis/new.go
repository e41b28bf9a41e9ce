package redis

import (
	"fmt"

	"github.com/go-redis/redis/v8"

	"catalog/internal/item/repository"
	"catalog/pkg/log"
)

const itemsSetKey = "items"

type implRepository struct {
	client *redis.Client
	l      log.Logger
}

// New creates a Redis-backed Repository. Each item is a JSON value under
// item:<id>; the items set indexes every id.
func New(client *redis.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("item/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/redis.%s", method)
}

func itemKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}
