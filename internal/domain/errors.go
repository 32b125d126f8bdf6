package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrNoCredentials is returned when a request carries no parseable
	// Basic credentials.
	ErrNoCredentials = errors.New("no credentials supplied")

	// ErrInvalidCredentials is returned when supplied credentials do not
	// resolve to an account, or the password does not verify against the
	// stored hash. Both cases share this error so callers cannot
	// distinguish them.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotCourseOwner is returned when an authenticated user attempts to
	// mutate a course owned by a different account.
	ErrNotCourseOwner = errors.New("course does not belong to the authenticated user")
)
