package response

import (
	"toolshare/internal/domain/availability"
	"toolshare/internal/usecase/queries"
)

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func FromBookedRanges(ranges []availability.BookedRange) []DateRangeResponse {
	out := make([]DateRangeResponse, len(ranges))
	for i, r := range ranges {
		out[i] = DateRangeResponse{StartDate: date(r.Start), EndDate: date(r.End)}
	}
	return out
}

type AvailabilityCheckResponse struct {
	Valid           bool               `json:"valid"`
	ValidationError string             `json:"validation_error,omitempty"`
	Conflict        bool               `json:"conflict"`
	ConflictWith    *DateRangeResponse `json:"conflict_with,omitempty"`
	ConflictMessage string             `json:"conflict_message,omitempty"`
	QuoteNeeded     bool               `json:"quote_needed"`
}

func FromDerivation(d availability.Derivation) *AvailabilityCheckResponse {
	res := &AvailabilityCheckResponse{
		Valid:       d.Validation.Passed(),
		Conflict:    d.Conflict.Conflict,
		QuoteNeeded: d.QuoteNeeded,
	}
	if !res.Valid {
		res.ValidationError = d.Validation.Err.Error()
	}
	if res.Conflict {
		res.ConflictWith = &DateRangeResponse{StartDate: date(d.Conflict.With.Start), EndDate: date(d.Conflict.With.End)}
		res.ConflictMessage = d.Conflict.Err().Error()
	}
	return res
}

type PriceQuoteResponse struct {
	TotalPrice float64 `json:"total_price"`
	DailyPrice float64 `json:"daily_price"`
	Days       int64   `json:"days"`
}

func FromQuote(q *queries.QuoteView) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		TotalPrice: q.TotalPrice.Float64(),
		DailyPrice: q.DailyPrice.Float64(),
		Days:       q.Days,
	}
}
