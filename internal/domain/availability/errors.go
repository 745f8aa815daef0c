package availability

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange       = errors.New("invalid date range")
	ErrDateConflict       = errors.New("dates conflict with an existing booking")
	ErrQuoteUnavailable   = errors.New("price quote unavailable")
	ErrQuotePending       = errors.New("price quote is still pending")
	ErrSubmissionRejected = errors.New("reservation submission rejected")
)

// RangeError is an InvalidRange with the reason shown inline to the user.
type RangeError struct {
	reason string
}

func (e *RangeError) Error() string { return e.reason }

func (e *RangeError) Is(target error) bool { return target == ErrInvalidRange }

var (
	ErrStartInPast    = &RangeError{reason: "Start date cannot be in the past"}
	ErrEndBeforeStart = &RangeError{reason: "End date must be after start date"}
)

type DateConflictError struct {
	With BookedRange
}

func (e *DateConflictError) Error() string {
	return fmt.Sprintf("Tool is unavailable from %s", e.With)
}

func (e *DateConflictError) Is(target error) bool { return target == ErrDateConflict }

type QuoteUnavailableError struct {
	Cause error
}

func (e *QuoteUnavailableError) Error() string {
	if e.Cause == nil {
		return ErrQuoteUnavailable.Error()
	}
	return ErrQuoteUnavailable.Error() + ": " + e.Cause.Error()
}

func (e *QuoteUnavailableError) Is(target error) bool { return target == ErrQuoteUnavailable }

func (e *QuoteUnavailableError) Unwrap() error { return e.Cause }

// SubmissionRejectedError carries the server's message; local state is no longer trusted after it.
type SubmissionRejectedError struct {
	Status  int
	Message string
}

func (e *SubmissionRejectedError) Error() string {
	if e.Message == "" {
		return ErrSubmissionRejected.Error()
	}
	return e.Message
}

func (e *SubmissionRejectedError) Is(target error) bool { return target == ErrSubmissionRejected }
