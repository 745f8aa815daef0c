package queries

import (
	"context"
	"time"

	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/infra"
	"toolshare/internal/pkg/clock"
	"toolshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type QuoteView struct {
	TotalPrice pricing.Money
	DailyPrice pricing.Money
	Days       int64
}

type AvailabilityReadStore interface {
	// DailyPrice returns a NOT_FOUND repository error for an unknown tool
	DailyPrice(ctx context.Context, toolID uuid.UUID) (pricing.Money, error)
	BookedRanges(ctx context.Context, toolID uuid.UUID) ([]availability.BookedRange, error)
}

type AvailabilityQueries interface {
	BookedRanges(ctx context.Context, toolID uuid.UUID) ([]availability.BookedRange, error)
	Check(ctx context.Context, req availability.ReservationRequest) (availability.Derivation, error)
	Quote(ctx context.Context, req availability.ReservationRequest) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	readStore  AvailabilityReadStore
	calculator pricing.PriceCalculator
	clock      clock.Clock
}

func NewAvailabilityQueries(readStore AvailabilityReadStore, calculator pricing.PriceCalculator, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		readStore:  readStore,
		calculator: calculator,
		clock:      clk,
	}
}

func (q *availabilityQueriesImpl) BookedRanges(ctx context.Context, toolID uuid.UUID) ([]availability.BookedRange, error) {
	if _, err := q.dailyPrice(ctx, toolID); err != nil {
		return nil, err
	}
	booked, err := q.readStore.BookedRanges(ctx, toolID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return booked, nil
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, req availability.ReservationRequest) (availability.Derivation, error) {
	booked, err := q.BookedRanges(ctx, req.ToolID)
	if err != nil {
		return availability.Derivation{}, err
	}
	return availability.Derive(req, booked, q.today()), nil
}

// Quote prices the request with the server's daily rate. Only well-formed ranges are quoted.
func (q *availabilityQueriesImpl) Quote(ctx context.Context, req availability.ReservationRequest) (*QuoteView, error) {
	if v := availability.ValidateRange(req, q.today()); !v.Passed() {
		return nil, v.Err
	}

	rate, err := q.dailyPrice(ctx, req.ToolID)
	if err != nil {
		return nil, err
	}

	total, err := q.calculator.TotalFor(rate, req.Start, req.End)
	if err != nil {
		return nil, errs.Mark(err, availability.ErrQuoteUnavailable)
	}

	return &QuoteView{
		TotalPrice: total,
		DailyPrice: rate,
		Days:       req.Range().Days(),
	}, nil
}

func (q *availabilityQueriesImpl) dailyPrice(ctx context.Context, toolID uuid.UUID) (pricing.Money, error) {
	rate, err := q.readStore.DailyPrice(ctx, toolID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pricing.Money{}, errs.ErrToolNotFound
		}
		return pricing.Money{}, errs.Mark(err, ErrQueryFailed)
	}
	return rate, nil
}

func (q *availabilityQueriesImpl) today() time.Time {
	return clock.Today(q.clock)
}
