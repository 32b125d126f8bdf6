// Package domain defines the core business entities of the courses API:
// users, courses, and the errors they can produce.
package domain
