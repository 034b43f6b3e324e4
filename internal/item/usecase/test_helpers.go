package usecase

import (
	"context"
	"sync"

	"items-service/internal/item"
	repo "items-service/internal/item/repository"
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

// Mock repository: in-memory map with sequential IDs and per-method
// error injection.
type mockRepository struct {
	mu     sync.Mutex
	items  map[int64]item.Item
	nextID int64

	createErr error
	getErr    error
	updateErr error
	deleteErr error

	updateCalls int
	deleteCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{items: map[int64]item.Item{}}
}

func (m *mockRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return item.Item{}, m.createErr
	}
	m.nextID++
	it := item.Item{ID: m.nextID, Title: opt.Title, Description: opt.Description}
	m.items[it.ID] = it
	return it, nil
}

func (m *mockRepository) GetItem(ctx context.Context, id int64) (item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return item.Item{}, m.getErr
	}
	return m.items[id], nil // zero value when absent
}

func (m *mockRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if m.updateErr != nil {
		return item.Item{}, m.updateErr
	}
	if _, ok := m.items[opt.ID]; !ok {
		return item.Item{}, nil
	}
	it := item.Item{ID: opt.ID, Title: opt.Title, Description: opt.Description}
	m.items[opt.ID] = it
	return it, nil
}

func (m *mockRepository) DeleteItem(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.items, id)
	return nil
}
