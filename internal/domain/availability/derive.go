package availability

import "time"

type Derivation struct {
	Validation  ValidationResult
	Conflict    ConflictResult
	QuoteNeeded bool
}

// Derive recomputes everything that depends on the request dates. Call it after every mutation.
func Derive(req ReservationRequest, booked []BookedRange, today time.Time) Derivation {
	d := Derivation{Validation: ValidateRange(req, today)}
	if req.Range().IsOrdered() {
		d.Conflict = CheckOverlap(req, booked)
	}
	d.QuoteNeeded = d.Validation.Passed() && !d.Conflict.Conflict
	return d
}

// BlockingError is the first reason the request cannot be submitted, or nil.
func (d Derivation) BlockingError(q Quote) error {
	if !d.Validation.Passed() {
		return d.Validation.Err
	}
	if err := d.Conflict.Err(); err != nil {
		return err
	}
	switch q.State {
	case QuoteResolved:
		return nil
	case QuoteUnavailable:
		return &QuoteUnavailableError{Cause: q.Err}
	case QuotePending:
		return ErrQuotePending
	default:
		return ErrQuoteUnavailable
	}
}

func CanSubmit(validation ValidationResult, conflict ConflictResult, quote Quote) bool {
	return validation.Passed() && !conflict.Conflict && quote.State == QuoteResolved
}
