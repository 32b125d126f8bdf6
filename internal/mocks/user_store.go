package mocks

import (
	"context"
	"sync"

	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/store"
	"github.com/google/uuid"
)

// MockUserStore implements store.UserStore for testing. By default it
// behaves as an in-memory store; individual methods can be overridden with
// the Fn fields.
type MockUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	// Custom behavior functions
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// Call tracking for verification
	CreateCalls     int
	GetByEmailCalls int
}

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.CreateCalls++
	fn := m.CreateFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

// GetByID implements store.UserStore.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	m.GetByEmailCalls++
	fn := m.GetByEmailFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, email)
	}

	normalized := domain.NormalizeEmail(email)

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == normalized {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Count returns the number of stored users.
func (m *MockUserStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}
