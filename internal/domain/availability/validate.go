package availability

import "time"

type ValidationResult struct {
	Err error
}

func (v ValidationResult) Passed() bool {
	return v.Err == nil
}

// ValidateRange rejects a start before today and an end before the start. today is a calendar date.
func ValidateRange(req ReservationRequest, today time.Time) ValidationResult {
	if req.Start.Before(today) {
		return ValidationResult{Err: ErrStartInPast}
	}
	if req.End.Before(req.Start) {
		return ValidationResult{Err: ErrEndBeforeStart}
	}
	return ValidationResult{}
}
