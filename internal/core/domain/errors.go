package domain

import "errors"

// Authentication and account errors.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Validation and registration errors. ErrInvalidInput is wrapped with a
// field-specific message before it reaches the error handler.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidRole       = errors.New("invalid role for department")
	ErrDuplicateIdentity = errors.New("account already exists")
)

// Lookup errors.
var (
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// Workflow errors.
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyClockedIn  = errors.New("already clocked in")
	ErrNotClockedIn      = errors.New("not clocked in")
)

// ErrStoreUnavailable wraps document-store failures that are neither a
// missing document nor a duplicate key. It is surfaced to the caller as a
// 503 instead of being masked with fabricated data.
var ErrStoreUnavailable = errors.New("store unavailable")
