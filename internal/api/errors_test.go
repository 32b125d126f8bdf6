package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantErrList []string
	}{
		{
			name:        "validation error",
			err:         NewValidationError("Please include a title", "Please include a description"),
			wantStatus:  http.StatusBadRequest,
			wantErrList: []string{"Please include a title", "Please include a description"},
		},
		{
			name:        "duplicate email",
			err:         store.ErrEmailExists,
			wantStatus:  http.StatusBadRequest,
			wantErrList: []string{"That Email is already in use"},
		},
		{
			name:        "wrapped duplicate email",
			err:         fmt.Errorf("create user: %w", store.ErrEmailExists),
			wantStatus:  http.StatusBadRequest,
			wantErrList: []string{"That Email is already in use"},
		},
		{
			name:       "missing credentials",
			err:        domain.ErrNoCredentials,
			wantStatus: http.StatusUnauthorized,
			wantError:  "No credentials supplied",
		},
		{
			name:       "invalid credentials",
			err:        domain.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid credentials",
		},
		{
			name:       "not owner",
			err:        domain.ErrNotCourseOwner,
			wantStatus: http.StatusForbidden,
			wantError:  "This course does not belong to the logged in user",
		},
		{
			name:       "course not found",
			err:        store.ErrCourseNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "Course could not be found",
		},
		{
			name:       "user not found",
			err:        store.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "User could not be found",
		},
		{
			name:       "malformed ID reads as not found",
			err:        fmt.Errorf("%w: bad id", domain.ErrInvalidID),
			wantStatus: http.StatusNotFound,
			wantError:  "Course could not be found",
		},
		{
			name:       "invalid entity",
			err:        store.ErrInvalidEntity,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid entity data",
		},
		{
			name:       "unclassified failure never leaks details",
			err:        errors.New("pq: connection refused to postgres://u:p@host/db"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
			rec := httptest.NewRecorder()

			HandleAPIError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			if tt.wantErrList != nil {
				raw, ok := body["errors"].([]interface{})
				require.True(t, ok, "expected errors list in body")
				got := make([]string, 0, len(raw))
				for _, m := range raw {
					got = append(got, m.(string))
				}
				assert.Equal(t, tt.wantErrList, got)
			} else {
				assert.Equal(t, tt.wantError, body["error"])
			}

			// Classified or not, the raw error text stays out of the body.
			assert.NotContains(t, rec.Body.String(), "postgres://")
		})
	}
}

func TestHandlerAdapter(t *testing.T) {
	t.Parallel()

	t.Run("nil error writes nothing extra", func(t *testing.T) {
		h := Handler(func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodDelete, "/api/courses/1", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("returned error goes through the translator", func(t *testing.T) {
		h := Handler(func(w http.ResponseWriter, r *http.Request) error {
			return store.ErrCourseNotFound
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/courses/1", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
	assert.Equal(t,
		"validation failed: Please include a title",
		NewValidationError("Please include a title").Error())
}
