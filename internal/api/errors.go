package api

import (
	"errors"
	"net/http"

	"github.com/coursedeck/coursedeck-api/internal/api/shared"
	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/store"
)

// Message texts shared across the error translator. Kept as constants so
// tests and handlers agree on the exact wire strings.
const (
	msgNoCredentials      = "No credentials supplied"
	msgInvalidCredentials = "Invalid credentials"
	msgCourseNotFound     = "Course could not be found"
	msgUserNotFound       = "User could not be found"
	msgNotOwner           = "This course does not belong to the logged in user"
	msgEmailInUse         = "That Email is already in use"
	msgInvalidEntity      = "Invalid entity data"
	msgUnexpected         = "An unexpected error occurred"
)

// ValidationError carries the ordered, human-readable field errors
// produced by request validation. The translator renders it as a 400 with
// an errors list.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Messages[0]
}

// NewValidationError builds a ValidationError from the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// HandlerFunc is an HTTP handler that reports failure by returning a
// classified error instead of writing an error status itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts a HandlerFunc into a standard http.HandlerFunc, funneling
// any returned error through HandleAPIError. Every route is registered
// through this adapter, so status-code policy lives in exactly one place.
func Handler(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			HandleAPIError(w, r, err)
		}
	}
}

// HandleAPIError maps a classified error to its wire response. This is the
// only function that decides error status codes; handlers raise the most
// specific classification at the point of detection and return.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		shared.RespondWithErrors(w, r, http.StatusBadRequest, validationErr.Messages)

	case errors.Is(err, store.ErrEmailExists):
		// The duplicate-email response keeps the errors-list shape so a
		// failed registration always reads the same way to clients.
		shared.RespondWithErrors(w, r, http.StatusBadRequest, []string{msgEmailInUse})

	case errors.Is(err, domain.ErrNoCredentials):
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgNoCredentials)

	case errors.Is(err, domain.ErrInvalidCredentials):
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidCredentials)

	case errors.Is(err, domain.ErrNotCourseOwner):
		shared.RespondWithError(w, r, http.StatusForbidden, msgNotOwner)

	case errors.Is(err, store.ErrCourseNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, msgCourseNotFound)

	case errors.Is(err, store.ErrUserNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, msgUserNotFound)

	// A malformed resource identifier names no resource; report it the
	// same way as a missing one for deterministic status codes.
	case errors.Is(err, domain.ErrInvalidID):
		shared.RespondWithError(w, r, http.StatusNotFound, msgCourseNotFound)

	case errors.Is(err, store.ErrInvalidEntity):
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidEntity)

	default:
		// Unclassified failure. Full details go to the log (redacted);
		// the client sees only a generic message.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
	}
}
