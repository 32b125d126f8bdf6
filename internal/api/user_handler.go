package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coursedeck/coursedeck-api/internal/api/shared"
	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/platform/logger"
	"github.com/coursedeck/coursedeck-api/internal/service/auth"
	"github.com/coursedeck/coursedeck-api/internal/store"
	"github.com/go-playground/validator/v10"
)

// UserHandler handles user-related API requests.
type UserHandler struct {
	userStore      store.UserStore
	passwordHasher auth.PasswordHasher
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	passwordHasher auth.PasswordHasher,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore:      userStore,
		passwordHasher: passwordHasher,
		validator:      validator.New(),
		logger:         log.With(slog.String("component", "user_handler")),
	}
}

// GetCurrentUser handles GET /users. It returns the account resolved by
// the credential verifier, with the password hash and timestamps excluded.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) error {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		// Only reachable if the route was registered without the
		// authentication middleware.
		return domain.ErrNoCredentials
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
	return nil
}

// Register handles POST /users. Registration requires no prior
// authentication; validation runs first, then the password is hashed and
// the account persisted. A duplicate email surfaces from the store as a
// conflict.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UserCreateRequest
	if err := decodeAndValidate(r, h.validator, &req, userCreateRules); err != nil {
		return err
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		// The request passed field validation, so a domain rejection here
		// is a finer-grained rule (e.g. whitespace-only name); report it
		// as a validation failure rather than a server error.
		switch {
		case errors.Is(err, domain.ErrEmptyName):
			return NewValidationError("Please provide a name")
		case errors.Is(err, domain.ErrEmptyEmail), errors.Is(err, domain.ErrInvalidEmail):
			return NewValidationError("Please provide a valid email address")
		case errors.Is(err, domain.ErrPasswordTooLong):
			return NewValidationError("Password must be at most 72 characters")
		default:
			return err
		}
	}

	hash, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return err
	}
	user.HashedPassword = hash
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		return err
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
	return nil
}
