package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common course validation errors
var (
	ErrEmptyCourseID    = errors.New("course ID cannot be empty")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrEmptyOwner       = errors.New("course owner cannot be empty")
)

// Course represents an owned content resource. UserID references the
// owning account and is fixed at creation; updates never touch it.
type Course struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   string    `json:"estimatedTime,omitempty"`
	MaterialsNeeded string    `json:"materialsNeeded,omitempty"`
	UserID          uuid.UUID `json:"userId"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// NewCourse creates a new Course owned by the given user. It generates a
// new UUID and sets the creation/update timestamps. Returns an error if
// validation fails.
func NewCourse(userID uuid.UUID, title, description, estimatedTime, materialsNeeded string) (*Course, error) {
	course := &Course{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(title),
		Description:     strings.TrimSpace(description),
		EstimatedTime:   strings.TrimSpace(estimatedTime),
		MaterialsNeeded: strings.TrimSpace(materialsNeeded),
		UserID:          userID,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks if the Course has valid data.
// Returns an error if any field fails validation.
func (c *Course) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCourseID
	}

	if c.Title == "" {
		return ErrEmptyTitle
	}

	if c.Description == "" {
		return ErrEmptyDescription
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyOwner
	}

	return nil
}

// OwnedBy reports whether the course belongs to the given user.
func (c *Course) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
