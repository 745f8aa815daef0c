package availability

type ConflictResult struct {
	Conflict bool
	With     BookedRange
}

func (c ConflictResult) Err() error {
	if !c.Conflict {
		return nil
	}
	return &DateConflictError{With: c.With}
}

// CheckOverlap reports the first booked range, in list order, that shares a day with the request.
func CheckOverlap(req ReservationRequest, booked []BookedRange) ConflictResult {
	candidate := req.Range()
	for _, b := range booked {
		if candidate.Overlaps(b) {
			return ConflictResult{Conflict: true, With: b}
		}
	}
	return ConflictResult{}
}
