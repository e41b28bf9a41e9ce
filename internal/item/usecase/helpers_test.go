package usecase_test

import (
	"context"

	"catalog/internal/item"
	"catalog/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo records calls and delegates to the optional func fields.
type mockRepo struct {
	getItemFunc  func(id string) (item.Item, bool, error)
	getItemsFunc func(f repository.Filter) ([]item.Item, error)
	createErr    error
	updateErr    error
	deleteErr    error

	created  []item.Item
	updated  []item.Item
	deleted  []string
	filters  []repository.Filter
	getCalls int
}

func (m *mockRepo) GetItem(ctx context.Context, id string) (item.Item, bool, error) {
	m.getCalls++
	if m.getItemFunc != nil {
		return m.getItemFunc(id)
	}
	return item.Item{}, false, nil
}

func (m *mockRepo) GetItems(ctx context.Context, f repository.Filter) ([]item.Item, error) {
	m.filters = append(m.filters, f)
	if m.getItemsFunc != nil {
		return m.getItemsFunc(f)
	}
	return []item.Item{}, nil
}

func (m *mockRepo) CreateItem(ctx context.Context, it item.Item) error {
	m.created = append(m.created, it)
	return m.createErr
}

func (m *mockRepo) UpdateItem(ctx context.Context, it item.Item) error {
	m.updated = append(m.updated, it)
	return m.updateErr
}

func (m *mockRepo) DeleteItem(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.deleteErr
}

func (m *mockRepo) Ping(ctx context.Context) error { return nil }
