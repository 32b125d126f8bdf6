// Package mocks provides hand-rolled test doubles for the store and auth
// interfaces, with optional custom behavior functions and call tracking.
package mocks
