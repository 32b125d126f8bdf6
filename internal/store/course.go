package store

import (
	"context"

	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/google/uuid"
)

// CourseWithOwner pairs a course with its owning user, as returned by the
// read operations that embed owner details.
type CourseWithOwner struct {
	Course domain.Course
	Owner  domain.User
}

// CourseStore defines the interface for course data persistence.
type CourseStore interface {
	// Create saves a new course to the store.
	// Returns ErrInvalidEntity wrapping the domain error if data is
	// invalid, or if the owner referenced by the course does not exist.
	Create(ctx context.Context, course *domain.Course) error

	// GetByID retrieves a course and its owner by the course's unique ID.
	// Returns ErrCourseNotFound if the course does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*CourseWithOwner, error)

	// List retrieves all courses with their owners, ordered by creation time.
	List(ctx context.Context) ([]CourseWithOwner, error)

	// Update modifies an existing course's content fields. The owner
	// reference is immutable and is never written.
	// Returns ErrCourseNotFound if the course does not exist.
	Update(ctx context.Context, course *domain.Course) error

	// Delete removes a course from the store by its ID.
	// Returns ErrCourseNotFound if the course does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
