package errs

import "errors"

// Sentinel errors shared by the command and query sides so handlers map one vocabulary.
var (
	// Lookup errors
	ErrUserNotFound        = errors.New("user not found")
	ErrToolNotFound        = errors.New("tool not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Access errors
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")

	// Review errors
	ErrReviewNotAllowed = errors.New("review not allowed")

	// Idempotency errors
	ErrIdempotencyInProgress = errors.New("idempotency in progress")
	ErrIdempotencyMismatch   = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
