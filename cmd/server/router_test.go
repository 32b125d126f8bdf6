package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursedeck/coursedeck-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 8080, LogLevel: "error"},
		Database: config.DatabaseConfig{URL: "postgres://localhost/test"},
		Auth:     config.AuthConfig{BcryptCost: 4},
	}

	return newRouter(cfg, db, slog.Default()), mock
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestWelcomeEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome")
}

func TestProtectedRoutesRejectMissingCredentials(t *testing.T) {
	t.Parallel()

	router, mock := testRouter(t)

	for _, tc := range []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/courses"},
		{http.MethodPut, "/api/courses/7e9c1151-ca1d-4b4e-b44c-bf2f7e09e2cf"},
		{http.MethodDelete, "/api/courses/7e9c1151-ca1d-4b4e-b44c-bf2f7e09e2cf"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}

	// Rejection happens before any store access.
	assert.NoError(t, mock.ExpectationsWereMet())
}
