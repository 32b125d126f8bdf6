package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/store"
	"github.com/google/uuid"
)

// MockCourseStore implements store.CourseStore for testing. By default it
// behaves as an in-memory store joined against the provided owners;
// individual methods can be overridden with the Fn fields.
type MockCourseStore struct {
	mu      sync.Mutex
	courses map[uuid.UUID]*domain.Course
	owners  map[uuid.UUID]*domain.User

	// Custom behavior functions
	CreateFn  func(ctx context.Context, course *domain.Course) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*store.CourseWithOwner, error)
	ListFn    func(ctx context.Context) ([]store.CourseWithOwner, error)
	UpdateFn  func(ctx context.Context, course *domain.Course) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Call tracking for verification
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// NewMockCourseStore creates an empty in-memory course store.
func NewMockCourseStore() *MockCourseStore {
	return &MockCourseStore{
		courses: make(map[uuid.UUID]*domain.Course),
		owners:  make(map[uuid.UUID]*domain.User),
	}
}

// Ensure MockCourseStore implements store.CourseStore
var _ store.CourseStore = (*MockCourseStore)(nil)

// AddOwner registers a user so courses created for it can be joined.
func (m *MockCourseStore) AddOwner(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.owners[user.ID] = &copied
}

// Get returns the stored course by ID, for test assertions.
func (m *MockCourseStore) Get(id uuid.UUID) (*domain.Course, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	course, ok := m.courses[id]
	if !ok {
		return nil, false
	}
	copied := *course
	return &copied, true
}

// Create implements store.CourseStore.Create
func (m *MockCourseStore) Create(ctx context.Context, course *domain.Course) error {
	m.mu.Lock()
	m.CreateCalls++
	fn := m.CreateFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, course)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *course
	m.courses[course.ID] = &copied
	return nil
}

// GetByID implements store.CourseStore.GetByID
func (m *MockCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*store.CourseWithOwner, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.joinLocked(id)
}

// List implements store.CourseStore.List
func (m *MockCourseStore) List(ctx context.Context) ([]store.CourseWithOwner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(m.courses))
	for id := range m.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return m.courses[ids[i]].CreatedAt.Before(m.courses[ids[j]].CreatedAt)
	})

	result := make([]store.CourseWithOwner, 0, len(ids))
	for _, id := range ids {
		cwo, err := m.joinLocked(id)
		if err != nil {
			return nil, err
		}
		result = append(result, *cwo)
	}
	return result, nil
}

// Update implements store.CourseStore.Update
func (m *MockCourseStore) Update(ctx context.Context, course *domain.Course) error {
	m.mu.Lock()
	m.UpdateCalls++
	fn := m.UpdateFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, course)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.courses[course.ID]
	if !ok {
		return store.ErrCourseNotFound
	}
	existing.Title = course.Title
	existing.Description = course.Description
	existing.EstimatedTime = course.EstimatedTime
	existing.MaterialsNeeded = course.MaterialsNeeded
	existing.UpdatedAt = course.UpdatedAt
	return nil
}

// Delete implements store.CourseStore.Delete
func (m *MockCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.DeleteCalls++
	fn := m.DeleteFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.courses[id]; !ok {
		return store.ErrCourseNotFound
	}
	delete(m.courses, id)
	return nil
}

// joinLocked pairs a course with its owner. Caller holds the lock.
func (m *MockCourseStore) joinLocked(id uuid.UUID) (*store.CourseWithOwner, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, store.ErrCourseNotFound
	}
	cwo := store.CourseWithOwner{Course: *course}
	if owner, ok := m.owners[course.UserID]; ok {
		cwo.Owner = *owner
	}
	return &cwo, nil
}
