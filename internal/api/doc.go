// Package api provides the HTTP handlers for the courses API and the
// single point where classified failures are translated into wire
// responses.
package api
