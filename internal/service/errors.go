// Package service provides application-level services for history records,
// predictions, schedules, and users.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to
// appropriate HTTP status codes.
var (
	// ErrNoCycleData indicates the user has not recorded any cycle data yet,
	// so phase-based scheduling cannot be performed.
	// API layer should map this to HTTP 404 Not Found.
	ErrNoCycleData = errors.New("no cycle data recorded")
)
