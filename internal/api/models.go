package api

import (
	"errors"
	"net/http"

	"github.com/coursedeck/coursedeck-api/internal/api/shared"
	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Common request/response structures

// UserCreateRequest defines the payload for the user registration endpoint.
type UserCreateRequest struct {
	Name     string `json:"name"         validate:"required"`
	Email    string `json:"emailAddress" validate:"required,email"`
	Password string `json:"password"     validate:"required,max=72"`
}

// CourseRequest defines the payload for course create and update. The
// optional fields are pointers so an update can tell an absent key from an
// explicit empty value; absent keys leave the stored value untouched.
type CourseRequest struct {
	Title           string  `json:"title"           validate:"required"`
	Description     string  `json:"description"     validate:"required"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// optionalField reads an optional request field, treating an absent key as
// the empty string.
func optionalField(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// UserResponse is the wire shape of a user. The password hash and
// timestamps have no field here, so no code path can serialize them.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	EmailAddress string    `json:"emailAddress"`
}

// CourseResponse is the wire shape of a course with its embedded owner.
type CourseResponse struct {
	ID              uuid.UUID    `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	EstimatedTime   string       `json:"estimatedTime,omitempty"`
	MaterialsNeeded string       `json:"materialsNeeded,omitempty"`
	UserID          uuid.UUID    `json:"userId"`
	User            UserResponse `json:"user"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		EmailAddress: user.Email,
	}
}

func courseToResponse(cwo *store.CourseWithOwner) CourseResponse {
	return CourseResponse{
		ID:              cwo.Course.ID,
		Title:           cwo.Course.Title,
		Description:     cwo.Course.Description,
		EstimatedTime:   cwo.Course.EstimatedTime,
		MaterialsNeeded: cwo.Course.MaterialsNeeded,
		UserID:          cwo.Course.UserID,
		User:            userToResponse(&cwo.Owner),
	}
}

// fieldRule maps a struct field and failed validation tag to the wire
// message clients see. An empty tag matches any failure on the field.
type fieldRule struct {
	field   string
	tag     string
	message string
}

// Validation messages, in rule-declaration order.
var (
	userCreateRules = []fieldRule{
		{"Name", "", "Please provide a name"},
		{"Email", "required", "Please provide an email address"},
		{"Email", "email", "Please provide a valid email address"},
		{"Password", "required", "Please provide a password"},
		{"Password", "max", "Password must be at most 72 characters"},
	}

	courseRules = []fieldRule{
		{"Title", "", "Please include a title"},
		{"Description", "", "Please include a description"},
	}
)

const (
	msgBodyRequired = "Please include a request body"
	msgBodyInvalid  = "Please provide a valid JSON request body"
)

// decodeAndValidate decodes the request body into req and validates it
// against the given rules. An absent body short-circuits with a single
// synthesized message; a present body reports every failing field at once,
// in rule order. Any failure is returned as a *ValidationError.
func decodeAndValidate(r *http.Request, v *validator.Validate, req interface{}, rules []fieldRule) error {
	if err := shared.DecodeJSON(r, req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			return NewValidationError(msgBodyRequired)
		}
		return NewValidationError(msgBodyInvalid)
	}

	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Struct-level failure outside tag validation; surface generically.
		return NewValidationError(msgBodyInvalid)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, rule := range rules {
		for _, fe := range fieldErrs {
			if fe.StructField() != rule.field {
				continue
			}
			if rule.tag != "" && fe.Tag() != rule.tag {
				continue
			}
			messages = append(messages, rule.message)
			break
		}
	}

	if len(messages) == 0 {
		// A field failed that no rule names; never swallow it.
		return NewValidationError(msgBodyInvalid)
	}

	return NewValidationError(messages...)
}
