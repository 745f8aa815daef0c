// Package reservationform holds the state of one reservation being filled in:
// the selected dates, their derived validity, and the latest price quote.
package reservationform

import (
	"context"
	"errors"
	"sync"
	"time"

	"toolshare/internal/client/toolshare"
	"toolshare/internal/domain/availability"
	"toolshare/internal/domain/pricing"
	"toolshare/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNotLoaded = errors.New("booked ranges have not been loaded")
	ErrNoDates   = errors.New("no dates selected")
	ErrClosed    = errors.New("form is closed")
)

type RangeSource interface {
	BookedRanges(ctx context.Context, toolID uuid.UUID) ([]availability.BookedRange, error)
}

type Quoter interface {
	Quote(ctx context.Context, req availability.ReservationRequest) (pricing.Money, error)
}

type Submitter interface {
	CreateReservation(ctx context.Context, req availability.ReservationRequest, idempotencyKey uuid.UUID) (*toolshare.Reservation, error)
}

type Deps struct {
	Ranges    RangeSource
	Quoter    Quoter
	Submitter Submitter
	Clock     clock.Clock
}

// State is a snapshot of the form.
type State struct {
	Request    availability.ReservationRequest
	HasDates   bool
	Booked     []availability.BookedRange
	Validation availability.ValidationResult
	Conflict   availability.ConflictResult
	Quote      availability.Quote
}

type Form struct {
	deps   Deps
	toolID uuid.UUID
	quotes *availability.QuoteTracker

	// ctx parents every quote lookup; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	loaded     bool
	hasDates   bool
	closed     bool
	booked     []availability.BookedRange
	request    availability.ReservationRequest
	derivation availability.Derivation
	submitKey  uuid.UUID
}

func New(toolID uuid.UUID, deps Deps) *Form {
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Form{
		deps:    deps,
		toolID:  toolID,
		quotes:  availability.NewQuoteTracker(),
		ctx:     ctx,
		cancel:  cancel,
		request: availability.ReservationRequest{ToolID: toolID},
	}
}

// Load fetches the tool's booked ranges and re-derives any dates already set.
func (f *Form) Load(ctx context.Context) error {
	booked, err := f.deps.Ranges.BookedRanges(ctx, f.toolID)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.booked = booked
	f.loaded = true
	if f.hasDates {
		f.rederiveLocked()
	}
	return nil
}

// SetDates replaces the request dates. The previous quote is dropped and, when the
// new dates are valid and free, a fresh quote lookup starts in the background.
func (f *Form) SetDates(start, end time.Time) availability.Derivation {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.request = f.request.WithDates(clock.DateOf(start), clock.DateOf(end))
	f.hasDates = true
	f.submitKey = uuid.Nil
	if f.closed {
		f.derivation = availability.Derive(f.request, f.booked, clock.Today(f.deps.Clock))
		return f.derivation
	}
	f.rederiveLocked()
	return f.derivation
}

func (f *Form) rederiveLocked() {
	f.derivation = availability.Derive(f.request, f.booked, clock.Today(f.deps.Clock))
	f.quotes.Invalidate()
	if !f.loaded || !f.derivation.QuoteNeeded {
		return
	}

	seq, ctx := f.quotes.Issue(f.ctx)
	req := f.request
	go func() {
		price, err := f.deps.Quoter.Quote(ctx, req)
		if err != nil {
			f.quotes.Fail(seq, err)
			return
		}
		f.quotes.Resolve(seq, price)
	}()
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	booked := make([]availability.BookedRange, len(f.booked))
	copy(booked, f.booked)
	return State{
		Request:    f.request,
		HasDates:   f.hasDates,
		Booked:     booked,
		Validation: f.derivation.Validation,
		Conflict:   f.derivation.Conflict,
		Quote:      f.quotes.Current(),
	}
}

// AwaitQuote blocks while the current quote is pending.
func (f *Form) AwaitQuote(ctx context.Context) (availability.Quote, error) {
	for {
		changed := f.quotes.Changed()
		q := f.quotes.Current()
		if q.State != availability.QuotePending {
			return q, nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return q, ctx.Err()
		}
	}
}

func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded || !f.hasDates || f.closed {
		return false
	}
	return availability.CanSubmit(f.derivation.Validation, f.derivation.Conflict, f.quotes.Current())
}

// Submit sends the request once nothing blocks it locally. On success the dates are
// cleared, so the same request is never sent twice. A server refusal comes back as
// *availability.SubmissionRejectedError with the server's message, and the form then
// needs another Load before it can submit again.
func (f *Form) Submit(ctx context.Context) (*toolshare.Reservation, error) {
	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return nil, ErrClosed
	case !f.loaded:
		f.mu.Unlock()
		return nil, ErrNotLoaded
	case !f.hasDates:
		f.mu.Unlock()
		return nil, ErrNoDates
	}
	if err := f.derivation.BlockingError(f.quotes.Current()); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	if f.submitKey == uuid.Nil {
		f.submitKey = uuid.New()
	}
	req, key := f.request, f.submitKey
	f.mu.Unlock()

	res, err := f.deps.Submitter.CreateReservation(ctx, req, key)
	if err != nil {
		var apiErr *toolshare.APIError
		if errors.As(err, &apiErr) {
			f.distrust()
			return nil, &availability.SubmissionRejectedError{Status: apiErr.Status, Message: apiErr.Message}
		}
		return nil, err
	}
	f.discard(key)
	return res, nil
}

// discard clears the submitted request unless the dates were edited while it was in flight.
func (f *Form) discard(key uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitKey != key {
		return
	}
	f.hasDates = false
	f.request = availability.ReservationRequest{ToolID: f.toolID}
	f.derivation = availability.Derivation{}
	f.submitKey = uuid.Nil
	f.quotes.Invalidate()
}

// distrust forgets the booked ranges and quote after a server rejection; Load must run again.
func (f *Form) distrust() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = false
	f.booked = nil
	f.submitKey = uuid.Nil
	f.quotes.Invalidate()
}

// Close abandons the form: the in-flight quote is cancelled and any late answer is
// ignored. It does not wait for a Quoter that keeps running after cancellation.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.quotes.Invalidate()
	f.cancel()
}
