package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/coursedeck/coursedeck-api/internal/api/shared"
	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/platform/logger"
	"github.com/coursedeck/coursedeck-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CourseHandler handles course-related API requests.
type CourseHandler struct {
	courseStore store.CourseStore
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewCourseHandler creates a new CourseHandler with the given dependencies.
func NewCourseHandler(courseStore store.CourseStore, log *slog.Logger) *CourseHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CourseHandler{
		courseStore: courseStore,
		validator:   validator.New(),
		logger:      log.With(slog.String("component", "course_handler")),
	}
}

// courseID extracts and parses the course ID from the URL path.
func courseID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a valid course ID", domain.ErrInvalidID, raw)
	}
	return id, nil
}

// ListCourses handles GET /courses. Public; returns every course with its
// embedded owner.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) error {
	courses, err := h.courseStore.List(r.Context())
	if err != nil {
		return err
	}

	responses := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, courseToResponse(&courses[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
	return nil
}

// GetCourse handles GET /courses/{id}. Public.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) error {
	id, err := courseID(r)
	if err != nil {
		return err
	}

	cwo, err := h.courseStore.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, courseToResponse(cwo))
	return nil
}

// CreateCourse handles POST /courses. Requires authentication; the
// authenticated account becomes the owner by construction.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		return domain.ErrNoCredentials
	}

	var req CourseRequest
	if err := decodeAndValidate(r, h.validator, &req, courseRules); err != nil {
		return err
	}

	course, err := domain.NewCourse(user.ID, req.Title, req.Description,
		optionalField(req.EstimatedTime), optionalField(req.MaterialsNeeded))
	if err != nil {
		return courseValidationError(err)
	}

	if err := h.courseStore.Create(r.Context(), course); err != nil {
		return err
	}

	log.Info("course created",
		slog.String("course_id", course.ID.String()),
		slog.String("user_id", user.ID.String()))

	w.Header().Set("Location", courseLocation(r, course.ID))
	w.WriteHeader(http.StatusCreated)
	return nil
}

// UpdateCourse handles PUT /courses/{id}. Requires authentication and
// ownership. Existence is checked before ownership, and ownership before
// validation, so the status code for any malformed-and-unauthorized
// combination is deterministic: 404, then 403, then 400.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		return domain.ErrNoCredentials
	}

	id, err := courseID(r)
	if err != nil {
		return err
	}

	cwo, err := h.courseStore.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	if !cwo.Course.OwnedBy(user.ID) {
		return domain.ErrNotCourseOwner
	}

	var req CourseRequest
	if err := decodeAndValidate(r, h.validator, &req, courseRules); err != nil {
		return err
	}

	// Only keys present in the body are written; an absent optional field
	// keeps its stored value, an explicit empty one clears it.
	course := cwo.Course
	course.Title = strings.TrimSpace(req.Title)
	course.Description = strings.TrimSpace(req.Description)
	if req.EstimatedTime != nil {
		course.EstimatedTime = strings.TrimSpace(*req.EstimatedTime)
	}
	if req.MaterialsNeeded != nil {
		course.MaterialsNeeded = strings.TrimSpace(*req.MaterialsNeeded)
	}
	course.UpdatedAt = time.Now().UTC()

	if err := course.Validate(); err != nil {
		return courseValidationError(err)
	}

	if err := h.courseStore.Update(r.Context(), &course); err != nil {
		return err
	}

	log.Info("course updated", slog.String("course_id", course.ID.String()))

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// DeleteCourse handles DELETE /courses/{id}. Requires authentication and
// ownership; existence is checked first.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		return domain.ErrNoCredentials
	}

	id, err := courseID(r)
	if err != nil {
		return err
	}

	cwo, err := h.courseStore.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	if !cwo.Course.OwnedBy(user.ID) {
		return domain.ErrNotCourseOwner
	}

	if err := h.courseStore.Delete(r.Context(), id); err != nil {
		return err
	}

	log.Info("course deleted", slog.String("course_id", id.String()))

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// courseValidationError maps a domain rejection of course content to the
// same wire messages field validation produces for the matching mistake,
// so a whitespace-only title reads like a missing one.
func courseValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyTitle):
		return NewValidationError("Please include a title")
	case errors.Is(err, domain.ErrEmptyDescription):
		return NewValidationError("Please include a description")
	default:
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
}

// courseLocation builds the Location header value for a created course.
func courseLocation(r *http.Request, id uuid.UUID) string {
	base := strings.TrimSuffix(r.URL.Path, "/")
	return base + "/" + id.String()
}
