// Package store defines the persistence interfaces for the courses API
// and the sentinel errors their implementations report. Concrete backends
// live under internal/platform.
package store
