// Package middleware provides the request-scoped checks that run before
// the resource handlers: credential verification and trace IDs.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coursedeck/coursedeck-api/internal/api"
	"github.com/coursedeck/coursedeck-api/internal/api/shared"
	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/service/auth"
	"github.com/coursedeck/coursedeck-api/internal/store"
)

// AuthMiddleware verifies HTTP Basic credentials against the user store
// and attaches the resolved account to the request context.
type AuthMiddleware struct {
	userStore        store.UserStore
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(
	userStore store.UserStore,
	passwordVerifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthMiddleware {
	if log == nil {
		log = slog.Default()
	}
	return &AuthMiddleware{
		userStore:        userStore,
		passwordVerifier: passwordVerifier,
		logger:           log.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate extracts the email/password pair from the Authorization
// header, resolves the account, and verifies the password against the
// stored hash. On success the resolved user is attached to the request
// context for the ownership guard and the handlers; on failure the
// request is rejected with 401 through the central error translator.
//
// The account-miss and password-miss cases are distinguished only in
// logs; the wire response is identical for both, and the unknown-account
// path still performs one hash comparison so its timing matches.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			m.logger.Debug("request without parseable basic credentials",
				slog.String("path", r.URL.Path))
			api.HandleAPIError(w, r, domain.ErrNoCredentials)
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				m.passwordVerifier.CompareDummy(password)
				m.logger.Debug("authentication failed: account not found")
				api.HandleAPIError(w, r, domain.ErrInvalidCredentials)
				return
			}
			m.logger.Error("failed to look up account for authentication",
				slog.String("error", err.Error()))
			api.HandleAPIError(w, r, err)
			return
		}

		if err := m.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
			m.logger.Debug("authentication failed: password mismatch",
				slog.String("user_id", user.ID.String()))
			api.HandleAPIError(w, r, domain.ErrInvalidCredentials)
			return
		}

		m.logger.Debug("authentication successful",
			slog.String("user_id", user.ID.String()))

		ctx := shared.WithCurrentUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
