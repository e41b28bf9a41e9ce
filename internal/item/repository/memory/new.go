package memory

import (
	"sync"

	"catalog/internal/item"
	"catalog/internal/item/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	items map[string]item.Item
}

// New creates an in-process Repository. Data lives only as long as the process.
func New() repository.Repository {
	return &implRepository{items: make(map[string]item.Item)}
}
