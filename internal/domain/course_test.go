package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	tests := []struct {
		name        string
		userID      uuid.UUID
		title       string
		description string
		wantErr     error
	}{
		{
			name:        "valid course",
			userID:      owner,
			title:       "Build a Basic Bookcase",
			description: "High-end furniture projects are great to dream about.",
			wantErr:     nil,
		},
		{
			name:        "empty title",
			userID:      owner,
			title:       "",
			description: "A description.",
			wantErr:     ErrEmptyTitle,
		},
		{
			name:        "whitespace title",
			userID:      owner,
			title:       "   ",
			description: "A description.",
			wantErr:     ErrEmptyTitle,
		},
		{
			name:        "empty description",
			userID:      owner,
			title:       "A title",
			description: "",
			wantErr:     ErrEmptyDescription,
		},
		{
			name:        "missing owner",
			userID:      uuid.Nil,
			title:       "A title",
			description: "A description.",
			wantErr:     ErrEmptyOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, err := NewCourse(tt.userID, tt.title, tt.description, "12 hours", "wood, tools")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, course)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, course.ID)
			assert.Equal(t, tt.userID, course.UserID)
			assert.Equal(t, "12 hours", course.EstimatedTime)
		})
	}
}

func TestCourseOwnedBy(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	course, err := NewCourse(owner, "A title", "A description.", "", "")
	require.NoError(t, err)

	assert.True(t, course.OwnedBy(owner))
	assert.False(t, course.OwnedBy(uuid.New()))
}
